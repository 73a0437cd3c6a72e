package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

func printBanner(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)
}

// printSection prints a titled block of tab-separated rows.
func printSection(out io.Writer, title string, rows func(w io.Writer)) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, lightRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows(w)
	w.Flush()
	fmt.Fprintln(out)
}

func statusMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
