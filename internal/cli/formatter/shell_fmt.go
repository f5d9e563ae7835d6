package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devterm/internal/terminal"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome(owner, headline string) string {
	var b strings.Builder

	title := "devterm"
	if owner != "" {
		title = owner
	}
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  "+title) + "\n")
	if headline != "" {
		b.WriteString(Dim("  "+headline) + "\n")
	}
	b.WriteString(Dim("  ─────────────────────────────") + "\n\n")

	for _, name := range []string{"aboutme", "projects", "skills", "ask", "help"} {
		cmd, ok := terminal.Lookup(name)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", StyleGreen.Render(fmt.Sprintf("%-18s", cmd.Usage)), Dim(cmd.Description)))
	}
	b.WriteString("\n")
	b.WriteString(Dim("  Tab for autocomplete. Type 'help' for all commands.") + "\n")

	return b.String()
}

// FormatCompletions renders the candidates offered for an ambiguous Tab.
func FormatCompletions(names []string) string {
	return Dim("suggestions: ") + StyleGreen.Render(strings.Join(names, "  "))
}
