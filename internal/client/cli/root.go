package cli

import (
	"context"

	"github.com/dmitrijs2005/medianest/internal/buildinfo"
	"github.com/dmitrijs2005/medianest/internal/client/config"
	"github.com/dmitrijs2005/medianest/internal/logging"
	"github.com/spf13/cobra"
)

// Execute runs the medianest command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the medianest command tree. Configuration is loaded
// once in PersistentPreRunE and shared by every subcommand.
func NewRootCommand() *cobra.Command {
	var (
		app    *App
		logger logging.Logger
	)

	root := &cobra.Command{
		Use:           "medianest",
		Short:         "Browse, upload and delete images in a remote media store",
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app, err = NewApp(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "configuration loaded",
				"api_base_url", cfg.APIBaseURL,
				"deletion_enabled", cfg.DeletionEnabled(),
				"mime_detection", cfg.MimeDetection)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if s, ok := logger.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Shell(cmd.Context())
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	// loaded runs fn after an initial gallery fetch. A failed fetch aborts
	// the command with the fetch error.
	loaded := func(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if err := app.Load(cmd.Context()); err != nil {
				_ = app.List(cmd.Context())
				return err
			}
			return fn(cmd, args)
		}
	}

	var assumeYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an image (requires the delete PIN)",
		Args:  cobra.ExactArgs(1),
		RunE: loaded(func(cmd *cobra.Command, args []string) error {
			app.assumeYes = assumeYes
			return app.Delete(cmd.Context(), args[0])
		}),
	}
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation before the PIN")

	root.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"l", "ls"},
			Short:   "List images in the gallery",
			Args:    cobra.NoArgs,
			RunE: loaded(func(cmd *cobra.Command, _ []string) error {
				return app.List(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "upload <path>",
			Short: "Upload an image file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Upload(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "capture",
			Short: "Take a photo with the configured camera command and upload it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.Capture(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show image details",
			Args:  cobra.ExactArgs(1),
			RunE: loaded(func(cmd *cobra.Command, args []string) error {
				return app.Show(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "download <id>",
			Short: "Save the full resolution image to the download directory",
			Args:  cobra.ExactArgs(1),
			RunE: loaded(func(cmd *cobra.Command, args []string) error {
				return app.Download(cmd.Context(), args[0])
			}),
		},
		deleteCmd,
		&cobra.Command{
			Use:   "support",
			Short: "Show how to request the delete PIN",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.Support(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.Shell(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)

	return root
}

// needsApp reports whether cmd talks to the media store. Build info, help
// and shell completion scripts work without any configuration.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
