package rootevents

import "errors"

// Error categories returned by the package. Test with errors.Is.
var (
	// ErrNotFound reports that the file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrFormat reports that the file is not a readable ROOT container.
	ErrFormat = errors.New("unrecognized file format")
	// ErrLookup reports a missing tree or column.
	ErrLookup = errors.New("no such object")
	// ErrRange reports a row request outside the table.
	ErrRange = errors.New("row out of range")
	// ErrIO reports an underlying read failure.
	ErrIO = errors.New("read failed")
)

// ErrType reports a typed read whose Go type does not match the column.
var ErrType = errors.New("column type mismatch")
