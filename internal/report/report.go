// Package report renders event records and catalogues for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/scigolib/rootevents"
	"github.com/scigolib/rootevents/internal/core"
)

// Separator ends every event block.
var Separator = strings.Repeat("-", 40)

// Options controls text rendering.
type Options struct {
	Layout rootevents.EventLayout // Labels for the fields; zero means DefaultLayout.
	Color  bool
}

func (o Options) layout() rootevents.EventLayout {
	if o.Layout == (rootevents.EventLayout{}) {
		return rootevents.DefaultLayout()
	}
	return o.Layout
}

// Text writes one block per event:
//
//	Event 1:
//	  eventID: 1000
//	  adcVal: [100 101 ...]
//	  ...
//	----------------------------------------
//
// Events are numbered from their 1-based row.
func Text(w io.Writer, events []*rootevents.EventRecord, opts Options) error {
	header := fmt.Sprint
	label := fmt.Sprint
	if opts.Color {
		header = colorize(color.New(color.FgCyan, color.Bold))
		label = colorize(color.New(color.FgYellow))
	}

	names := opts.layout().Names()
	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "%s\n", header(fmt.Sprintf("Event %d:", ev.Index+1)))
		for i, v := range ev.Values() {
			fmt.Fprintf(&b, "  %s %v\n", label(names[i]+":"), v)
		}
		fmt.Fprintln(&b, Separator)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func colorize(c *color.Color) func(...any) string {
	c.EnableColor()
	return c.SprintFunc()
}

// YAML writes the events as a YAML sequence of mappings keyed by column name.
func YAML(w io.Writer, events []*rootevents.EventRecord, layout rootevents.EventLayout) error {
	if layout == (rootevents.EventLayout{}) {
		layout = rootevents.DefaultLayout()
	}
	names := layout.Names()

	docs := make([]yaml.MapSlice, len(events))
	for i, ev := range events {
		item := yaml.MapSlice{{Key: "event", Value: ev.Index + 1}}
		for j, v := range ev.Values() {
			item = append(item, yaml.MapItem{Key: names[j], Value: v})
		}
		docs[i] = item
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("yaml encode failed: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// Columns writes the column catalogue of a table as an aligned listing.
func Columns(w io.Writer, cols []rootevents.Column) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSHAPE\tCOUNT")
	for _, c := range cols {
		count := c.Count
		if count == "" {
			count = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c, c.Shape, count)
	}
	return tw.Flush()
}

// Tables writes a file summary followed by the tree listing.
// entries holds the row count of each table, in the same order.
func Tables(w io.Writer, path string, hdr *core.Header, tables []rootevents.TableInfo, entries []int64) error {
	fmt.Fprintf(w, "file:        %s\n", path)
	fmt.Fprintf(w, "version:     %d\n", hdr.Version)
	fmt.Fprintf(w, "uuid:        %s\n", hdr.UUID)
	fmt.Fprintf(w, "size:        %d bytes\n", hdr.End)
	fmt.Fprintf(w, "compression: algorithm %d, level %d\n", hdr.CompressionAlgorithm(), hdr.CompressionLevel())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TREE\tCYCLE\tENTRIES\tTITLE")
	for i, t := range tables {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", t.Name, t.Cycle, entries[i], t.Title)
	}
	return tw.Flush()
}
