// Package rootevents provides read-only access to event data stored in ROOT files.
// A Store resolves trees by name; a Table reads tree branches as columns holding
// one value per event row, and assembles detector event records from them.
package rootevents

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/scigolib/rootevents/internal/core"
	"github.com/scigolib/rootevents/internal/utils"
)

// Store represents an open ROOT file.
type Store struct {
	path   string
	osFile *os.File
	data   mmap.MMap
	rf     *riofs.File
	hdr    *core.Header
}

// TableInfo describes a tree stored in the top directory of a file.
type TableInfo struct {
	Name  string
	Title string
	Class string
	Cycle int
}

// treeClasses lists the ROOT classes readable as tables.
var treeClasses = map[string]bool{
	"TTree":    true,
	"TNtuple":  true,
	"TNtupleD": true,
}

// Open opens a ROOT file for reading and returns a Store handle.
// The file is memory-mapped read-only for the lifetime of the Store.
func Open(path string) (*Store, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, openError(path, utils.WrapError("file stat failed", err))
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFormat, path)
	}
	if fi.Size() < core.MinFileSize {
		return nil, fmt.Errorf("%w: %s: file too small (%d bytes)", ErrFormat, path, fi.Size())
	}

	//nolint:gosec // G304: User-provided path is intentional for a file inspection library
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, utils.WrapError("file open failed", err))
	}

	hdr, err := core.ReadHeader(f)
	if err != nil {
		_ = f.Close()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	if err := hdr.CheckSize(fi.Size()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, utils.WrapError("file map failed", err))
	}

	rf, err := riofs.NewReader(mappedReader{bytes.NewReader(data)})
	if err != nil {
		_ = data.Unmap()
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, utils.WrapError("directory decode failed", err))
	}

	return &Store{
		path:   path,
		osFile: f,
		data:   data,
		rf:     rf,
		hdr:    hdr,
	}, nil
}

// mappedReader serves the decoder from the mapping. Close is a no-op:
// the Store unmaps and closes the file itself.
type mappedReader struct {
	*bytes.Reader
}

func (mappedReader) Close() error { return nil }

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}

// Close releases the decoder, the mapping and the file handle.
// It is safe to call Close multiple times.
func (s *Store) Close() error {
	if s.osFile == nil {
		return nil // Already closed.
	}

	var errs []error
	if err := s.rf.Close(); err != nil {
		errs = append(errs, utils.WrapError("decoder close failed", err))
	}
	if err := s.data.Unmap(); err != nil {
		errs = append(errs, utils.WrapError("file unmap failed", err))
	}
	if err := s.osFile.Close(); err != nil {
		errs = append(errs, utils.WrapError("file close failed", err))
	}

	s.rf = nil
	s.data = nil
	s.osFile = nil // Prevent double close.
	return errors.Join(errs...)
}

func (s *Store) closed() bool {
	return s.osFile == nil
}

// Path returns the path the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Header returns the parsed ROOT file header.
func (s *Store) Header() *core.Header {
	return s.hdr
}

// Tables lists the trees in the top directory, in key order.
// Only the highest cycle of each name is reported.
func (s *Store) Tables() []TableInfo {
	if s.closed() {
		return nil
	}

	var infos []TableInfo
	seen := make(map[string]int)
	for _, k := range s.rf.Keys() {
		if !treeClasses[k.ClassName()] {
			continue
		}
		info := TableInfo{
			Name:  k.Name(),
			Title: k.Title(),
			Class: k.ClassName(),
			Cycle: k.Cycle(),
		}
		if i, ok := seen[info.Name]; ok {
			if info.Cycle > infos[i].Cycle {
				infos[i] = info
			}
			continue
		}
		seen[info.Name] = len(infos)
		infos = append(infos, info)
	}
	return infos
}

// Table resolves the tree called name.
func (s *Store) Table(name string) (*Table, error) {
	if s.closed() {
		return nil, fmt.Errorf("%w: store is closed", ErrIO)
	}

	if !s.hasKey(name) {
		return nil, fmt.Errorf("%w: tree %q in %s", ErrLookup, name, s.path)
	}

	obj, err := s.rf.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, utils.WrapObjectError(fmt.Sprintf("key %q", name), "tree load failed", err))
	}

	tree, ok := obj.(rtree.Tree)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s is a %s, not a tree", ErrLookup, name, s.path, obj.Class())
	}

	return newTable(s, tree), nil
}

func (s *Store) hasKey(name string) bool {
	for _, k := range s.rf.Keys() {
		if k.Name() == name {
			return true
		}
	}
	return false
}
