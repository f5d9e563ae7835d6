package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devterm/internal/terminal"
	"github.com/charmbracelet/lipgloss"
)

// FormatOutput renders an interpreter Output for a terminal of the given
// width. Zero width disables wrapping.
func FormatOutput(out terminal.Output, width int) string {
	if len(out.Blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(out.Blocks))
	for _, b := range out.Blocks {
		parts = append(parts, formatBlock(b, width))
	}
	return strings.Join(parts, "\n")
}

func formatBlock(b terminal.Block, width int) string {
	switch b.Kind {
	case terminal.BlockHeading:
		return "\n" + StyleHeader.Render(b.Text)
	case terminal.BlockMuted:
		return Dim(Wrap(b.Text, width))
	case terminal.BlockList:
		return formatList(b.Items)
	case terminal.BlockLink:
		return StyleLink.Render(b.Text) + " " + Dim(b.URL)
	case terminal.BlockArt:
		return StylePurple.Render(b.Text)
	case terminal.BlockNotice:
		if b.Notice == nil {
			return ""
		}
		return NoticeIndicator(*b.Notice) + "\n" + Wrap(b.Notice.Description, width)
	default:
		return StyleFg.Render(Wrap(b.Text, width))
	}
}

func formatList(items []terminal.Item) string {
	labelWidth := 0
	for _, it := range items {
		if w := lipgloss.Width(it.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		label := StyleGreen.Render(it.Label)
		if it.Text == "" && it.URL == "" {
			b.WriteString("  " + label)
			continue
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(it.Label))
		b.WriteString(fmt.Sprintf("  %s%s  %s", label, pad, StyleFg.Render(it.Text)))
		if it.URL != "" && it.URL != it.Text {
			b.WriteString(" " + Dim(it.URL))
		}
	}
	return b.String()
}

// FormatEcho renders the prompt line echoed above a command's output.
func FormatEcho(input string) string {
	return Prompt() + input
}

// Prompt is the shell prompt prefix.
func Prompt() string {
	return StylePurple.Render("visitor@devterm") + Dim(":~$ ")
}
