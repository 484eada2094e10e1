package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ripit/ripit-cli/internal/state"
)

// RenderHistory shows recent searches newest-last, mirroring journal order.
func RenderHistory(entries []state.Entry) string {
	if len(entries) == 0 {
		return "No searches recorded yet\n"
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"When", "Pattern", "Regex", "Args"})
	for _, e := range entries {
		tw.AppendRow(table.Row{e.When, e.Pattern, e.Regex, strings.Join(e.Args, " ")})
	}
	return tw.Render() + "\n"
}
