package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dustin/go-humanize"
)

func imageCount(n int) string {
	if n == 1 {
		return "1 image"
	}
	return fmt.Sprintf("%d images", n)
}

// renderGallery writes the gallery screen for st.
func renderGallery(w io.Writer, st gallery.State, now time.Time) {
	fmt.Fprintln(w, "Media Nest Gallery")
	fmt.Fprintln(w, imageCount(len(st.Items)))
	if st.UploadInFlight {
		fmt.Fprintln(w, "Uploading...")
	}
	fmt.Fprintln(w)

	switch {
	case st.Status == gallery.StatusLoading && !st.Refreshing:
		fmt.Fprintln(w, "Loading images...")
	case st.Status == gallery.StatusError:
		fmt.Fprintln(w, "Something went wrong")
		fmt.Fprintln(w, st.Err)
		fmt.Fprintln(w, "Type 'retry' to try again.")
	case len(st.Items) == 0:
		fmt.Fprintln(w, "No Images Yet")
		fmt.Fprintln(w, "Upload your first image to get started: upload <path> or capture")
	default:
		renderItems(w, st.Items, now)
	}
}

func renderItems(w io.Writer, items []models.MediaItem, now time.Time) {
	idWidth, nameWidth := 2, 4
	for _, it := range items {
		idWidth = max(idWidth, len(it.ID))
		nameWidth = max(nameWidth, len(it.Name))
	}

	for _, it := range items {
		line := fmt.Sprintf("%-*s  %-*s  %-9s  %s", idWidth, it.ID, nameWidth, it.Name, dimensions(it), age(it, now))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func dimensions(it models.MediaItem) string {
	wd, ht, ok := it.Dimensions()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%dx%d", wd, ht)
}

func age(it models.MediaItem, now time.Time) string {
	t, ok := it.Created()
	if !ok {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// renderItem writes the detail view of one image.
func renderItem(w io.Writer, it models.MediaItem, now time.Time) {
	fmt.Fprintf(w, "ID:        %s\n", it.ID)
	fmt.Fprintf(w, "Name:      %s\n", it.Name)
	fmt.Fprintf(w, "URL:       %s\n", it.URL)
	if it.ThumbnailURL != "" {
		fmt.Fprintf(w, "Thumbnail: %s\n", it.ThumbnailURL)
	}
	if d := dimensions(it); d != "-" {
		fmt.Fprintf(w, "Size:      %s\n", d)
	}
	if t, ok := it.Created(); ok {
		fmt.Fprintf(w, "Created:   %s (%s)\n", t.Format(time.RFC3339), humanize.RelTime(t, now, "ago", "from now"))
	}
}
