// Package core parses the fixed-layout records of a ROOT file.
package core

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/scigolib/rootevents/internal/utils"
)

// ROOT file magic and header layout constants.
const (
	Magic = "root"

	// LargeFileVersion is added to the format version when the file
	// uses 64-bit seek pointers.
	LargeFileVersion = 1000000

	smallHeaderSize = 63
	largeHeaderSize = 75

	// MinFileSize is the smallest file that can hold a header.
	MinFileSize = smallHeaderSize
)

// Header represents the fixed ROOT file header.
// All fields are stored big-endian.
type Header struct {
	Version     int32 // Format version, without the large-file offset.
	Large       bool  // Seek pointers are 64-bit.
	Begin       int64 // Offset of the first data record.
	End         int64 // Offset of the first free byte.
	SeekFree    int64
	NbytesFree  int32
	NFree       int32
	NbytesName  int32
	Units       uint8 // Width of seek pointers in bytes (4 or 8).
	Compression int32 // algorithm*100 + level.
	SeekInfo    int64 // Offset of the streamer-info record.
	NbytesInfo  int32
	UUIDVersion uint16
	UUID        uuid.UUID
}

// Size returns the number of header bytes for this layout.
func (h *Header) Size() int {
	if h.Large {
		return largeHeaderSize
	}
	return smallHeaderSize
}

// CompressionAlgorithm returns the algorithm code of the compression setting.
func (h *Header) CompressionAlgorithm() int32 {
	return h.Compression / 100
}

// CompressionLevel returns the level of the compression setting.
func (h *Header) CompressionLevel() int32 {
	return h.Compression % 100
}

// ErrBadMagic is returned when the file does not start with the ROOT magic.
var ErrBadMagic = errors.New("invalid ROOT magic")

// IsROOTFile verifies the ROOT magic at offset 0.
func IsROOTFile(r utils.ReaderAt) bool {
	buf := utils.GetBuffer(len(Magic))
	defer utils.ReleaseBuffer(buf)

	if _, err := r.ReadAt(buf, 0); err != nil {
		return false
	}
	return string(buf) == Magic
}

// ReadHeader reads and parses the ROOT file header.
// Both the small (32-bit pointers) and large (64-bit pointers) layouts are supported.
func ReadHeader(r utils.ReaderAt) (*Header, error) {
	if !IsROOTFile(r) {
		return nil, ErrBadMagic
	}

	rawVersion, err := utils.ReadUint32(r, 4, binary.BigEndian)
	if err != nil {
		return nil, utils.WrapError("header version read failed", err)
	}

	//nolint:gosec // G115: version is stored as a signed 32-bit integer
	version := int32(rawVersion)
	if version <= 0 {
		return nil, fmt.Errorf("invalid format version: %d", version)
	}

	size := smallHeaderSize
	large := version >= LargeFileVersion
	if large {
		size = largeHeaderSize
	}

	buf := utils.GetBuffer(size)
	defer utils.ReleaseBuffer(buf)

	n, err := r.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, utils.WrapError("header read failed", err)
	}
	if n < size {
		return nil, fmt.Errorf("file too small to contain a header: %d < %d bytes", n, size)
	}

	return parseHeader(buf, large)
}

func parseHeader(buf []byte, large bool) (*Header, error) {
	be := binary.BigEndian
	//nolint:gosec // G115: ROOT stores these fields as signed integers
	i32 := func(off int) int32 { return int32(be.Uint32(buf[off:])) }
	//nolint:gosec // G115: ROOT stores these fields as signed integers
	i64 := func(off int) int64 { return int64(be.Uint64(buf[off:])) }

	h := &Header{
		Version: i32(4),
		Large:   large,
		Begin:   int64(i32(8)),
	}
	if large {
		h.Version -= LargeFileVersion
	}

	// Offsets after BEGIN depend on the pointer width.
	off := 12
	if large {
		h.End = i64(off)
		h.SeekFree = i64(off + 8)
		off += 16
	} else {
		h.End = int64(i32(off))
		h.SeekFree = int64(i32(off + 4))
		off += 8
	}
	h.NbytesFree = i32(off)
	h.NFree = i32(off + 4)
	h.NbytesName = i32(off + 8)
	h.Units = buf[off+12]
	h.Compression = i32(off + 13)
	off += 17
	if large {
		h.SeekInfo = i64(off)
		off += 8
	} else {
		h.SeekInfo = int64(i32(off))
		off += 4
	}
	h.NbytesInfo = i32(off)
	h.UUIDVersion = be.Uint16(buf[off+4:])

	id, err := uuid.FromBytes(buf[off+6 : off+22])
	if err != nil {
		return nil, utils.WrapError("file UUID decode failed", err)
	}
	h.UUID = id

	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Header) validate() error {
	if h.Units != 4 && h.Units != 8 {
		return fmt.Errorf("invalid pointer width: %d", h.Units)
	}
	if h.Begin < int64(h.Size()) {
		return fmt.Errorf("first record offset %d inside header", h.Begin)
	}
	if h.End < h.Begin {
		return fmt.Errorf("end offset %d before first record offset %d", h.End, h.Begin)
	}
	return nil
}

// CheckSize validates the header against the actual file size.
func (h *Header) CheckSize(fileSize int64) error {
	if h.End > fileSize {
		return fmt.Errorf("end offset %d beyond file size %d (truncated file)", h.End, fileSize)
	}
	return nil
}
