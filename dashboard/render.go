package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jrsteele09/hostel-admin/apiclient"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	_, _ = fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := newTable(w)
	writeRow(tw, headers...)
	for _, row := range rows {
		writeRow(tw, row...)
	}
	return tw.Flush()
}

func writeHeading(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// renderState writes the loading or error banner and reports whether the
// page body should be skipped.
func renderState(w io.Writer, s State) bool {
	switch {
	case s.Loading:
		_, _ = fmt.Fprintln(w, "Loading...")
		return true
	case s.SessionExpired:
		_, _ = fmt.Fprintln(w, "Your session has expired. Please log in again.")
		return true
	case s.Err != nil:
		_, _ = fmt.Fprintf(w, "Error: %s\nRun the command again to retry.\n", s.Message)
		return true
	}
	return false
}

func writePagination(w io.Writer, p apiclient.Pagination) {
	if p.Total == 0 {
		_, _ = fmt.Fprintln(w, "No records.")
		return
	}
	_, _ = fmt.Fprintf(w, "Showing %d-%d of %d (page %d of %d)\n", p.From, p.To, p.Total, p.CurrentPage, p.LastPage)
}

func money(amount float64, currency string) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	if currency == "" {
		return s
	}
	return currency + " " + s
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
