// Package utils provides helpers shared by the ROOT file readers.
package utils

import "sync"

// pooledSize covers the large-file header record. Larger requests are
// allocated directly and never pooled, so the pool stays header-sized.
const pooledSize = 128

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, pooledSize)
	},
}

// GetBuffer returns a byte slice of length size.
func GetBuffer(size int) []byte {
	if size > pooledSize {
		return make([]byte, size)
	}
	buf := bufferPool.Get().([]byte)
	return buf[:size]
}

// ReleaseBuffer returns a buffer obtained from GetBuffer.
func ReleaseBuffer(buf []byte) {
	if cap(buf) != pooledSize {
		return
	}
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
