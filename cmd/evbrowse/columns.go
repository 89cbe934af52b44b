package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/scigolib/rootevents/internal/report"
)

type columnsConfig struct {
	*cli.Command
	Tree string `cli:"name=tree desc='tree to describe'"`
}

func columnsCommand() *cli.Command {
	cfg := &columnsConfig{Tree: defaultTree}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "columns").
		WithSynopsis("columns [-tree name] <file> - List the columns of a tree").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *columnsConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: columns requires one argument, a ROOT file", cli.ErrUsage)
	}
	return listColumns(cc.Out, args[0], cfg.Tree)
}

func listColumns(w io.Writer, path, tree string) error {
	table, release, err := openTable(path, tree)
	if err != nil {
		return err
	}
	defer release()

	fmt.Fprintf(w, "%s: %d entries\n", table.Name(), table.Entries())
	return report.Columns(w, table.Columns())
}
