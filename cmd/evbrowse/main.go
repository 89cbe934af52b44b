// Package main provides evbrowse, a command-line inspector for ROOT event files.
// It prints the leading events of a tree, lists trees and columns, and dumps
// raw column values or file bytes for debugging.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), rootCommand())
}
