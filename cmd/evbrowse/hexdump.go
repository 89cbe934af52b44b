package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/scigolib/rootevents/internal/utils"
)

type hexdumpConfig struct {
	*cli.Command
	Offset int `cli:"name=offset desc='offset in file to start dumping from'"`
	Length int `cli:"name=length desc='number of bytes to dump'"`
}

func hexdumpCommand() *cli.Command {
	cfg := &hexdumpConfig{Length: 128}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "hexdump").
		WithSynopsis("hexdump [-offset n] [-length n] <file> - Dump raw file bytes (default: the ROOT header)").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *hexdumpConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: hexdump requires one argument, a file", cli.ErrUsage)
	}
	return hexdump(cc.Out, args[0], int64(cfg.Offset), cfg.Length)
}

// hexdump writes length bytes of path starting at offset, 16 bytes per line,
// with an ASCII column.
func hexdump(w io.Writer, path string, offset int64, length int) error {
	//nolint:gosec // G304: User-provided path is intentional for a debugging tool
	f, err := os.Open(path)
	if err != nil {
		return utils.WrapError("file open failed", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return utils.WrapError("file stat failed", err)
	}
	fileSize := fi.Size()

	if offset < 0 || offset >= fileSize {
		return fmt.Errorf("%w: invalid offset %d (file size: %d)", cli.ErrUsage, offset, fileSize)
	}
	if length < 1 {
		return fmt.Errorf("%w: invalid length %d", cli.ErrUsage, length)
	}
	if err := utils.ValidateBufferSize(uint64(length), utils.MaxHexDump, "dump length"); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	readLength := min(int64(length), fileSize-offset)

	buf := make([]byte, readLength)
	n, err := f.ReadAt(buf, offset)
	if err != nil && n == 0 {
		return utils.WrapError("file read failed", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dumping %d bytes at offset 0x%x (%d) of %s (size: %d bytes):\n",
		n, offset, offset, path, fileSize)

	for i := 0; i < n; i += 16 {
		end := min(i+16, n)
		chunk := buf[i:end]

		fmt.Fprintf(&b, "%08x: ", offset+int64(i))
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Fprintf(&b, "%02x ", chunk[j])
			} else {
				b.WriteString("   ")
			}
			if j == 7 {
				b.WriteString(" ")
			}
		}
		b.WriteString(" |")

		for _, c := range chunk {
			if c >= 32 && c <= 126 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}
