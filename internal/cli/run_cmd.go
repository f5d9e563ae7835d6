package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
)

func newRunCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run one terminal command and print its output",
		Example: `  devterm run projects
  devterm run project auto-scaler-cloud
  devterm run ask "What do you work on?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := joinArgs(args)

			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Processing...")
			}
			out := app.Interpreter.Interpret(cmd.Context(), line)
			stop()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			if text := formatter.FormatOutput(out, 0); text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the structured output as JSON")
	return cmd
}

// joinArgs rebuilds a command line from shell words. The user's shell has
// already stripped the quotes, so everything after ask is quoted again as one
// question. Elsewhere only words containing spaces get their quotes back.
func joinArgs(args []string) string {
	if len(args) > 1 && strings.EqualFold(args[0], "ask") {
		q := strings.Join(args[1:], " ")
		if len(q) < 2 || !strings.HasPrefix(q, `"`) || !strings.HasSuffix(q, `"`) {
			q = `"` + q + `"`
		}
		return args[0] + " " + q
	}
	parts := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t") && !strings.HasPrefix(a, `"`) {
			a = `"` + a + `"`
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}
