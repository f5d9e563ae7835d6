package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/devterm/internal/portfolio"
)

// FormatImportSummary renders the result of storing a portfolio snapshot.
func FormatImportSummary(snap *portfolio.Snapshot, source string, at time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("✔"), Bold(snap.Owner)))
	b.WriteString(Dim("source   ") + source + "\n")
	b.WriteString(Dim("stored   ") + at.Format("Jan 2, 2006 15:04") + "\n\n")

	rows := [][2]string{
		{"projects", fmt.Sprint(len(snap.Projects))},
		{"skills", fmt.Sprint(len(snap.AllSkills()))},
		{"experience", fmt.Sprint(len(snap.Experience))},
		{"education", fmt.Sprint(len(snap.Education))},
		{"contacts", fmt.Sprint(len(snap.Contact))},
	}
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-12s %s", StyleFg.Render(r[0]), StyleYellow.Render(r[1])))
	}
	return RenderBox("Portfolio imported", b.String())
}
