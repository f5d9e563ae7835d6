package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

func newInitCmd(app *App) *cobra.Command {
	var (
		answers initAnswers
		output  string
		force   bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a starter portfolio YAML file",
		Long:        "Write a starter portfolio YAML file. Missing answers are asked for interactively when running in a terminal.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipBootstrap: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				}
			}

			missing := strings.TrimSpace(answers.Owner) == "" || strings.TrimSpace(answers.Headline) == ""
			if missing && app.interactive() {
				if err := initForm(&answers).RunWithContext(cmd.Context()); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return errors.New("init cancelled")
					}
					return err
				}
			} else if missing {
				return errors.New("--owner and --headline are required when not running in a terminal")
			}
			if err := validateOptionalEmail(answers.Email); err != nil {
				return fmt.Errorf("--email: %w", err)
			}

			snap := starterSnapshot(answers)
			if errs := portfolio.Validate(snap); len(errs) > 0 {
				return fmt.Errorf("invalid portfolio: %w", errors.Join(errs...))
			}
			data, err := portfolio.Marshal(snap)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Wrote %s\n", formatter.StyleGreen.Render("✔"), output)
			fmt.Fprintln(out, formatter.Dim("Edit it, then run: devterm --portfolio "+output))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "portfolio.yaml", "file to write")
	f.BoolVar(&force, "force", false, "overwrite an existing file")
	f.StringVar(&answers.Owner, "owner", "", "your name")
	f.StringVar(&answers.Headline, "headline", "", "one-line title, e.g. \"Platform Engineer\"")
	f.StringVar(&answers.AboutMe, "about", "", "about me text")
	f.StringVar(&answers.Email, "email", "", "contact email")
	f.StringVar(&answers.GitHub, "github", "", "GitHub username")
	f.StringVar(&answers.Skills, "skills", "", "comma-separated skills")
	return cmd
}
