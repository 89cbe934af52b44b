package main

import (
	"log"

	"github.com/scott-cotton/cli"

	"github.com/scigolib/rootevents"
)

const usageText = `evbrowse - inspect detector events stored in ROOT files

Usage:
  evbrowse show [-tree name] [-n count] [-start row] [-o text|yaml] [-color] <file>
  evbrowse columns [-tree name] <file>
  evbrowse trees <file>
  evbrowse column [-tree name] [-start row] [-n count] <file> <column>
  evbrowse hexdump [-offset n] [-length n] <file>

Examples:
  evbrowse show run15731_processed_v5.root
  evbrowse show -n 20 -o yaml run15731_processed_v5.root
  evbrowse column -n 3 run15731_processed_v5.root adcVal`

const defaultTree = "tree"

func rootCommand() *cli.Command {
	return cli.NewCommand("evbrowse").
		WithSynopsis("evbrowse - inspect detector events stored in ROOT files").
		WithDescription(usageText).
		WithSubs(
			showCommand(),
			columnsCommand(),
			treesCommand(),
			columnCommand(),
			hexdumpCommand(),
		)
}

// openTable opens path and resolves the named tree. The returned function
// closes the store and must be called on every path.
func openTable(path, tree string) (*rootevents.Table, func(), error) {
	store, err := rootevents.Open(path)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close %s: %v", path, err)
		}
	}

	table, err := store.Table(tree)
	if err != nil {
		release()
		return nil, nil, err
	}
	return table, release, nil
}

// optSet reports whether the named option was given on the command line.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}
