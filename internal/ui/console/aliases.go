package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ripit/ripit-cli/pkg/pattern"
)

// RenderAliases shows the active alias table in application order plus the
// escape set.
func RenderAliases(t pattern.Table) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("aliases") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Token", "Expansion"})
	for _, r := range t.Rules() {
		tw.AppendRow(table.Row{r.Token, r.Expansion})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n\n")
	b.WriteString(text.Bold.Sprint("escaped literals") + " " + strings.Join(t.Escapes(), " "))
	b.WriteString("\n")
	return b.String()
}
