package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/medianest/internal/client/client"
	"github.com/dmitrijs2005/medianest/internal/client/config"
	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/services"
	"github.com/dmitrijs2005/medianest/internal/logging"
)

// App is the wired medianest client: one gallery store, the services that
// mutate it and the terminal it talks to.
type App struct {
	config *config.Config
	log    logging.Logger

	store    *gallery.Store
	ctrl     *services.Controller
	notifier services.Notifier
	camera   camera
	http     *http.Client

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// assumeYes skips the delete confirmation question.
	assumeYes bool
}

// NewApp validates c and wires an App around the HTTP media store client.
func NewApp(c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hc := &http.Client{}
	api := client.NewHTTPClient(c.APIBaseURL, c.APIKey,
		client.WithHTTPClient(hc),
		client.WithMimeDetection(c.MimeDetection),
	)
	return newApp(c, log, api, hc, in, out), nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, hc *http.Client, in io.Reader, out io.Writer) *App {
	store := gallery.NewStore()
	store.Subscribe(func(st gallery.State) {
		log.Debug(context.Background(), "gallery state changed",
			"status", st.Status.String(),
			"items", len(st.Items),
			"uploading", st.UploadInFlight,
			"refreshing", st.Refreshing)
	})
	n := newConsoleNotifier(out)
	sync := services.NewSyncService(api, store, n, log)
	guard := services.NewDeletionGuard(c.DeletePin)

	return &App{
		config:   c,
		log:      log,
		store:    store,
		ctrl:     services.NewController(sync, guard, store, n),
		notifier: n,
		camera:   commandCamera{command: c.CameraCommand, dir: os.TempDir()},
		http:     hc,
		reader:   bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Shell loads the gallery and runs the interactive loop until the user
// exits or input ends.
func (a *App) Shell(ctx context.Context) error {
	a.println("Media Nest (type 'help' for commands)")
	_ = a.Load(ctx)
	_ = a.List(ctx)
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

// status is the prompt suffix: image count and upload marker.
func (a *App) status() string {
	st := a.store.Snapshot()
	s := imageCount(len(st.Items))
	if st.UploadInFlight {
		s += ", uploading"
	}
	return fmt.Sprintf("(%s)", s)
}
