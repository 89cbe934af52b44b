package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

type columnConfig struct {
	*cli.Command
	Tree  string `cli:"name=tree desc='tree to read'"`
	Start int    `cli:"name=start desc='first row to dump'"`
	Count int    `cli:"name=n aliases=count desc='number of rows to dump (default: through the last row)'"`
}

func columnCommand() *cli.Command {
	cfg := &columnConfig{Tree: defaultTree}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "column").
		WithSynopsis("column [-tree name] [-start row] [-n count] <file> <column> - Dump the values of one column").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *columnConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: column requires 2 arguments, a ROOT file and a column name", cli.ErrUsage)
	}

	return dumpColumn(cc.Out, args[0], cfg.Tree, args[1], int64(cfg.Start), int64(cfg.Count), !optSet(cfg.Command, "n"))
}

// dumpColumn writes one "<row>: <value>" line per row. With toEnd set,
// count is ignored and every row from start is dumped.
func dumpColumn(w io.Writer, path, tree, name string, start, count int64, toEnd bool) error {
	table, release, err := openTable(path, tree)
	if err != nil {
		return err
	}
	defer release()

	if toEnd {
		count = max(table.Entries()-start, 0)
	}

	vals, err := table.ReadColumn(name, start, count)
	if err != nil {
		return err
	}

	var b strings.Builder
	for i, v := range vals {
		fmt.Fprintf(&b, "%d: %v\n", start+int64(i), v)
	}
	_, err = io.WriteString(w, b.String())
	return err
}
