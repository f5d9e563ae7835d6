package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// skipBootstrap marks commands that run without the interpreter stack.
const skipBootstrap = "skip-bootstrap"

// NewRootCmd creates the top-level "devterm" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// interactive terminal, or reads commands line by line when stdin is not a
// TTY.
func NewRootCmd(app *App) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:           "devterm",
		Short:         "Portfolio terminal",
		Long:          "devterm serves a developer portfolio as a terminal: static commands, AI answers and suggestions.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipBootstrap] == "true" {
				return nil
			}
			return app.Bootstrap(cmd.Context(), opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd.Context(), app)
			}
			return runLineMode(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	bindGlobalFlags(root.PersistentFlags(), &opts)

	root.AddCommand(
		newRunCmd(app),
		newServeCmd(app),
		newMCPCmd(app),
		newImportCmd(app),
		newInitCmd(app),
	)

	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *Options) {
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	fs.StringVar(&opts.Source, "source", "", "content source: builtin, yaml or db (default yaml when --portfolio is set, else builtin)")
	fs.StringVar(&opts.PortfolioPath, "portfolio", "", "YAML portfolio file (env DEVTERM_PORTFOLIO)")
	fs.StringVar(&opts.DBPath, "db", "", "SQLite database path (env DEVTERM_DB)")
}
