// Package testing provides test utilities for the ROOT event readers.
package testing

import (
	"errors"
	"io"
)

// MockReaderAt serves a byte slice the way an *os.File would, returning
// io.EOF on short reads. It can simulate a device error beyond an offset.
type MockReaderAt struct {
	data []byte

	// Err, when set, fails every read.
	Err error
	// Reads counts ReadAt calls.
	Reads int

	failFrom int64
	failErr  error
}

// NewMockReaderAt creates a new mock reader over data.
func NewMockReaderAt(data []byte) *MockReaderAt {
	return &MockReaderAt{data: data, failFrom: -1}
}

// FailFrom makes every read that reaches byte off or beyond fail with err.
func (m *MockReaderAt) FailFrom(off int64, err error) *MockReaderAt {
	m.failFrom = off
	m.failErr = err
	return m
}

func (m *MockReaderAt) ReadAt(p []byte, off int64) (int, error) {
	m.Reads++
	if m.Err != nil {
		return 0, m.Err
	}
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if m.failFrom >= 0 && off+int64(len(p)) > m.failFrom {
		return 0, m.failErr
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
