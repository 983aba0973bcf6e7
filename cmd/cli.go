package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"

	httpin "jobboard/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

// NewRootCommand is the jobboard CLI.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "jobboard",
		Short:         "Job board API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Connect to the database and serve the API on HTTP_PORT",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := LoadConfig(envFile)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return serve(ctx, cfg, cmd.ErrOrStderr())
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the dispatcher stages and routes without connecting anywhere",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := LoadConfig(envFile)
				if err != nil {
					return err
				}
				return printRoutes(cmd.OutOrStdout(), cfg)
			},
		},
	)

	return root
}

func serve(ctx context.Context, cfg Config, logOut io.Writer) error {
	logger, err := NewLogger(logOut, cfg)
	if err != nil {
		return err
	}

	app, err := Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			logger.Error("Failed to close application", "error", err)
		}
	}()

	if err := app.StartTasks(); err != nil {
		return err
	}
	return app.Serve(ctx)
}

// printRoutes lists the stages in registration order, then every route the
// sub-dispatchers register. Handlers are never invoked.
func printRoutes(w io.Writer, cfg Config) error {
	logger, err := NewLogger(io.Discard, cfg)
	if err != nil {
		return err
	}
	dispatcherCfg := httpin.DispatcherConfig{
		Jobs:         httpin.NewJobsRouter(httpin.JobsHandlers{}),
		Users:        httpin.NewUsersRouter(nil, nil),
		Docs:         httpin.NewDocsRouter(nil),
		AllowOrigins: cfg.CORSAllowOrigins,
		BodyLimit:    cfg.BodyLimit,
		Logger:       logger,
	}
	if err := dispatcherCfg.Validate(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTAGE\tPREFIX")
	for i, stage := range httpin.Stages(dispatcherCfg) {
		prefix := stage.Prefix
		if prefix == "" {
			prefix = "(all)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, stage.Name, prefix)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "METHOD\tPATH\t")
	routes := httpin.NewDispatcher(dispatcherCfg).Routes()
	slices.SortFunc(routes, func(a, b *echo.Route) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return strings.Compare(a.Method, b.Method)
	})
	for _, r := range routes {
		if r.Method == echo.RouteNotFound {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", r.Method, r.Path)
	}
	return tw.Flush()
}
