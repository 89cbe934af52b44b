package utils

import (
	"fmt"
	"math"
)

// CheckAddOverflow checks if adding two non-negative int64 values would overflow.
func CheckAddOverflow(a, b int64) error {
	if b > 0 && a > math.MaxInt64-b {
		return fmt.Errorf("addition overflow: %d + %d exceeds int64 max", a, b)
	}
	return nil
}

// ValidateRowRange checks that [start, start+count) lies within [0, rows).
func ValidateRowRange(start, count, rows int64) error {
	if start < 0 {
		return fmt.Errorf("negative start row %d", start)
	}
	if count < 0 {
		return fmt.Errorf("negative row count %d", count)
	}
	if err := CheckAddOverflow(start, count); err != nil {
		return err
	}
	if start+count > rows {
		return fmt.Errorf("rows [%d, %d) exceed row count %d", start, start+count, rows)
	}
	return nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size == 0 {
		return fmt.Errorf("%s: size cannot be zero", description)
	}

	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}

// MaxHexDump limits a raw dump request to 16MB.
const MaxHexDump = 16 * 1024 * 1024
