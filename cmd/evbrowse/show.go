package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/scigolib/rootevents/internal/report"
)

type showConfig struct {
	*cli.Command
	Tree   string `cli:"name=tree desc='tree to read'"`
	Count  int    `cli:"name=n aliases=count desc='number of events to print'"`
	Start  int    `cli:"name=start desc='first row to print'"`
	Output string `cli:"name=o aliases=output desc='output format: text or yaml'"`
	Color  bool   `cli:"name=color desc='colour the report (default: when stdout is a terminal)'"`
}

func showCommand() *cli.Command {
	cfg := &showConfig{Tree: defaultTree, Count: 5, Output: "text"}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "show").
		WithSynopsis("show [-tree name] [-n count] [-start row] [-o text|yaml] <file> - Print leading events").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *showConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires one argument, a ROOT file", cli.ErrUsage)
	}

	color := cfg.Color
	if !optSet(cfg.Command, "color") {
		color = isTerminal(cc.Out)
	}
	return show(cc.Out, args[0], cfg.Tree, int64(cfg.Start), int64(cfg.Count), cfg.Output, color)
}

// show prints count events starting at row start. Nothing is written unless
// every event was read.
func show(w io.Writer, path, tree string, start, count int64, format string, color bool) error {
	if format != "text" && format != "yaml" {
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, format)
	}

	table, release, err := openTable(path, tree)
	if err != nil {
		return err
	}
	defer release()

	events, err := table.DescribeEvents(start, count)
	if err != nil {
		return err
	}

	if format == "yaml" {
		return report.YAML(w, events, table.Layout())
	}
	return report.Text(w, events, report.Options{Layout: table.Layout(), Color: color})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
