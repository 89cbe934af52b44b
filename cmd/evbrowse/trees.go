package main

import (
	"fmt"
	"io"
	"log"

	"github.com/scott-cotton/cli"

	"github.com/scigolib/rootevents"
	"github.com/scigolib/rootevents/internal/report"
)

type treesConfig struct {
	*cli.Command
}

func treesCommand() *cli.Command {
	cfg := &treesConfig{}
	return cli.NewCommandAt(&cfg.Command, "trees").
		WithSynopsis("trees <file> - Show the file header and list its trees").
		WithRun(cfg.run)
}

func (cfg *treesConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: trees requires one argument, a ROOT file", cli.ErrUsage)
	}
	return listTrees(cc.Out, args[0])
}

func listTrees(w io.Writer, path string) error {
	store, err := rootevents.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close %s: %v", path, err)
		}
	}()

	infos := store.Tables()
	entries := make([]int64, len(infos))
	for i, info := range infos {
		table, err := store.Table(info.Name)
		if err != nil {
			return err
		}
		entries[i] = table.Entries()
	}
	return report.Tables(w, path, store.Header(), infos, entries)
}
