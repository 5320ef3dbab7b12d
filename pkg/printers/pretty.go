// Package printers renders records and bookmark listings for the plain CLI
// commands.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

const explanationWidth = 78

type PrettyPrint struct {
	Wide bool
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Record prints one day's record: title line, metadata, wrapped explanation.
func (pp *PrettyPrint) Record(r *record.Record) {
	if r == nil {
		return
	}
	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	_, _ = t.Println(r.Title)
	_, _ = f.Printf("%s · %s · %s\n\n", r.Date, r.MediaType, r.Attribution())

	width := explanationWidth
	if pp.Wide {
		width = 120
	}
	fmt.Println(wordwrap.String(r.Explanation, width))
	fmt.Println("")

	if id, ok := record.VideoID(r.URL); r.IsVideo() && ok {
		_, _ = f.Printf("video: %s (id %s)\n", r.URL, id)
	} else {
		_, _ = f.Printf("media: %s\n", r.URL)
	}
}

// Bookmarks prints the saved snapshots as a table, newest first.
func (pp *PrettyPrint) Bookmarks(list []*record.Record) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Bookmarks")

	if len(list) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("DATE", "TYPE", "TITLE")
	for _, r := range list {
		tbl.AddRow(r.Date, string(r.MediaType), r.Title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Error prints a failure line to stderr.
func (pp *PrettyPrint) Error(msg string) {
	e := color.New(color.FgRed)
	_, _ = e.Fprintln(os.Stderr, strings.TrimSpace(msg))
}
