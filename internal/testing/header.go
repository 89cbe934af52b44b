package testing

import "encoding/binary"

// HeaderSpec describes a synthetic ROOT file header.
type HeaderSpec struct {
	Version     int32 // Without the large-file offset.
	Large       bool
	Begin       int64
	End         int64
	Units       uint8
	Compression int32
	SeekInfo    int64
	NbytesInfo  int32
	UUID        [16]byte
}

// EncodeHeader returns the big-endian encoding of spec, padded with zeroes up to pad bytes.
func EncodeHeader(spec HeaderSpec, pad int) []byte {
	be := binary.BigEndian
	buf := make([]byte, 0, 128)
	put32 := func(v int32) { buf = be.AppendUint32(buf, uint32(v)) }
	put64 := func(v int64) { buf = be.AppendUint64(buf, uint64(v)) }
	ptr := func(v int64) {
		if spec.Large {
			put64(v)
			return
		}
		put32(int32(v))
	}

	version := spec.Version
	if spec.Large {
		version += 1000000
	}

	buf = append(buf, "root"...)
	put32(version)
	put32(int32(spec.Begin))
	ptr(spec.End)
	ptr(0)   // SeekFree
	put32(0) // NbytesFree
	put32(0) // NFree
	put32(0) // NbytesName
	buf = append(buf, spec.Units)
	put32(spec.Compression)
	ptr(spec.SeekInfo)
	put32(spec.NbytesInfo)
	buf = be.AppendUint16(buf, 1)
	buf = append(buf, spec.UUID[:]...)

	for len(buf) < pad {
		buf = append(buf, 0)
	}
	return buf
}
