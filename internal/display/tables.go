package display

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/chapters"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

// PrintChaptersTable prints parsed chapters in a formatted table.
func PrintChaptersTable(entries []chapters.Entry, out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIME\tSECONDS\tLABEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Time, e.Seconds, e.Label)
	}
	w.Flush()
}

// PrintBrandsTable prints the configured brands sorted by identifier.
func PrintBrandsTable(brands map[string]brand.Brand, out io.Writer) {
	ids := make([]string, 0, len(brands))
	for id := range brands {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tHOSTS\tLINKS")
	for _, id := range ids {
		b := brands[id]
		hosts := ""
		if len(b.Hosts) > 0 {
			hosts = b.Hosts[0]
			if len(b.Hosts) > 1 {
				hosts += fmt.Sprintf(" (+%d more)", len(b.Hosts)-1)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", id, b.Name, hosts, len(b.Links))
	}
	w.Flush()
}

// Successf prints a green confirmation line.
func Successf(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(format, args...)))
}
