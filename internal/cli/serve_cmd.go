package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/devterm/internal/api"
)

const defaultAddr = "127.0.0.1:8080"

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal over HTTP for the web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := api.NewRouter(api.Deps{
				Runner:    app.Interpreter,
				Suggester: app.Flows.PromptSuggestions,
				Logger:    app.Logger,
			})

			app.Logger.Info("serving", zap.String("addr", addr))
			fmt.Fprintf(cmd.ErrOrStderr(), "devterm listening on http://%s\n", addr)
			return api.ListenAndServe(ctx, addr, handler, app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("DEVTERM_ADDR", defaultAddr), "listen address (env DEVTERM_ADDR)")
	return cmd
}

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the terminal as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := api.NewMCPServer(api.MCPDeps{
				Runner:  app.Interpreter,
				Ask:     app.Flows.Ask,
				Source:  app.Source,
				Version: Version,
			})
			app.Logger.Debug("mcp stdio server starting")
			return api.ServeStdio(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
