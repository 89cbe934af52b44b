package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/rootevents"
	roottesting "github.com/scigolib/rootevents/internal/testing"
)

func writeRun(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.root")
	require.NoError(t, roottesting.WriteEvents(path, "tree", n))
	return path
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCommand())
}

func TestShowFiveEvents(t *testing.T) {
	path := writeRun(t, 5)

	var out bytes.Buffer
	require.NoError(t, show(&out, path, "tree", 0, 5, "text", false))

	text := out.String()
	require.Equal(t, 5, strings.Count(text, strings.Repeat("-", 40)+"\n"))

	last := -1
	for i := 0; i < 5; i++ {
		evt := roottesting.MakeEvent(i)
		hdr := fmt.Sprintf("Event %d:\n", i+1)
		pos := strings.Index(text, hdr)
		require.Greater(t, pos, last, hdr)
		last = pos

		block := text[pos:]
		require.Contains(t, block, fmt.Sprintf("  eventID: %d\n", evt.EventID))
		require.Contains(t, block, fmt.Sprintf("  nsTime: %d\n", evt.NSTime))
	}
	for _, name := range rootevents.DefaultLayout().Names() {
		require.Equal(t, 5, strings.Count(text, "  "+name+": "), name)
	}
}

func TestShowStartAndYAML(t *testing.T) {
	path := writeRun(t, 8)

	var out bytes.Buffer
	require.NoError(t, show(&out, path, "tree", 6, 2, "yaml", false))
	require.Contains(t, out.String(), "event: 7")
	require.Contains(t, out.String(), "event: 8")
	require.NotContains(t, out.String(), "event: 6")
}

func TestShowTooManyEvents(t *testing.T) {
	path := writeRun(t, 3)

	var out bytes.Buffer
	err := show(&out, path, "tree", 0, 5, "text", false)
	require.ErrorIs(t, err, rootevents.ErrRange)
	require.Empty(t, out.String(), "no partial report")
}

func TestShowMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := show(&out, filepath.Join(t.TempDir(), "missing.root"), "tree", 0, 5, "text", false)
	require.ErrorIs(t, err, rootevents.ErrNotFound)
	require.Empty(t, out.String())
}

func TestShowErrors(t *testing.T) {
	path := writeRun(t, 3)

	var out bytes.Buffer
	require.ErrorIs(t, show(&out, path, "events", 0, 1, "text", false), rootevents.ErrLookup)
	require.ErrorIs(t, show(&out, path, "tree", 0, 1, "csv", false), cli.ErrUsage)
	require.Empty(t, out.String())
}

func TestListColumns(t *testing.T) {
	path := writeRun(t, 4)

	var out bytes.Buffer
	require.NoError(t, listColumns(&out, path, "tree"))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "tree: 4 entries\n"))
	for _, name := range roottesting.EventBranches {
		require.Contains(t, text, name)
	}
	require.Contains(t, text, "[23]int16")
	require.Contains(t, text, "[]float32")
}

func TestListTrees(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.root")
	require.NoError(t, roottesting.WriteRun(path, 6, 2))

	var out bytes.Buffer
	require.NoError(t, listTrees(&out, path))

	text := out.String()
	require.Contains(t, text, "file:        "+path)
	require.Contains(t, text, "synthetic detector events")
	require.Contains(t, text, "event identifiers")
}

func TestDumpColumn(t *testing.T) {
	path := writeRun(t, 5)

	var out bytes.Buffer
	require.NoError(t, dumpColumn(&out, path, "tree", "eventID", 2, 0, true))
	require.Equal(t, "2: 1002\n3: 1003\n4: 1004\n", out.String())

	out.Reset()
	require.NoError(t, dumpColumn(&out, path, "tree", "triggerBits", 0, 2, false))
	require.Equal(t, "0: 1\n1: 2\n", out.String())

	out.Reset()
	require.ErrorIs(t, dumpColumn(&out, path, "tree", "energy", 0, 1, false), rootevents.ErrLookup)
	require.ErrorIs(t, dumpColumn(&out, path, "tree", "eventID", 4, 2, false), rootevents.ErrRange)
	require.ErrorIs(t, dumpColumn(&out, path, "tree", "eventID", 9, 0, true), rootevents.ErrRange)
	require.Empty(t, out.String())
}

func TestDumpColumnNegativeCount(t *testing.T) {
	path := writeRun(t, 5)

	var out bytes.Buffer
	require.ErrorIs(t, dumpColumn(&out, path, "tree", "eventID", 0, -1, false), rootevents.ErrRange)
	require.ErrorIs(t, dumpColumn(&out, path, "tree", "eventID", 0, -3, false), rootevents.ErrRange)
	require.Empty(t, out.String())
}

func TestColumnCommandFlags(t *testing.T) {
	path := writeRun(t, 4)

	var out bytes.Buffer
	cmd := columnCommand()
	cc := cli.DefaultContext()
	cc.Out = &out
	require.NoError(t, cmd.Run(cc, []string{path, "eventID"}))
	require.Equal(t, "0: 1000\n1: 1001\n2: 1002\n3: 1003\n", out.String())

	out.Reset()
	cmd = columnCommand()
	require.ErrorIs(t, cmd.Run(cc, []string{"-n", "-1", path, "eventID"}), rootevents.ErrRange)
	require.Empty(t, out.String())
}

func TestHexdump(t *testing.T) {
	path := writeRun(t, 1)

	var out bytes.Buffer
	require.NoError(t, hexdump(&out, path, 0, 20))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Dumping 20 bytes at offset 0x0 (0)")
	require.True(t, strings.HasPrefix(lines[1], "00000000: 72 6f 6f 74 "))
	require.True(t, strings.HasSuffix(lines[1], "|"))
	require.Contains(t, lines[1], "|root")
	require.True(t, strings.HasPrefix(lines[2], "00000010: "))

	require.ErrorIs(t, hexdump(&out, path, -1, 16), cli.ErrUsage)
	require.ErrorIs(t, hexdump(&out, path, 0, 0), cli.ErrUsage)
	require.Error(t, hexdump(&out, filepath.Join(t.TempDir(), "missing.root"), 0, 16))
}
