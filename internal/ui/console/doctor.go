package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ripit/ripit-cli/internal/github"
)

// BackendStatus is what doctor found out about the search backend.
type BackendStatus struct {
	Binary  string
	Path    string // empty when not on PATH
	Version string // normalized, empty when unknown
	Latest  string // normalized latest upstream release, empty when lookup failed
}

// RenderBackendStatus formats a doctor report.
func RenderBackendStatus(st BackendStatus) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("backend: ") + st.Binary + "\n")
	if st.Path == "" {
		b.WriteString(text.FgRed.Sprint("not found on PATH") + "\n")
		return b.String()
	}
	b.WriteString("path:      " + st.Path + "\n")
	if st.Version != "" {
		b.WriteString("installed: " + st.Version + "\n")
	}
	if st.Latest != "" {
		b.WriteString("latest:    " + st.Latest + "\n")
		if st.Version != "" {
			if github.CompareVersions(st.Version, st.Latest) < 0 {
				b.WriteString(text.FgYellow.Sprint("update available") + "\n")
			} else {
				b.WriteString(text.FgGreen.Sprint("up to date") + "\n")
			}
		}
	}
	return b.String()
}
