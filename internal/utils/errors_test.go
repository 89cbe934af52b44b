package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := &Error{Op: "header read failed", Cause: errors.New("unexpected EOF")}
	require.Equal(t, "header read failed: unexpected EOF", err.Error())

	err = &Error{Object: `tree "events"`, Op: "rows [0, 5) read failed", Cause: errors.New("basket size mismatch")}
	require.Equal(t, `tree "events": rows [0, 5) read failed: basket size mismatch`, err.Error())
}

func TestWrapError(t *testing.T) {
	require.Nil(t, WrapError("file open failed", nil), "wrapping nil should return nil")
	require.Nil(t, WrapObjectError(`key "tree"`, "tree load failed", nil))

	cause := errors.New("basket size mismatch")
	err := WrapObjectError(`tree "events"`, "reader setup failed", cause)
	require.NotNil(t, err)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, `tree "events"`, rerr.Object)
	require.Equal(t, "reader setup failed", rerr.Op)
	require.Equal(t, cause, errors.Unwrap(err))

	err = WrapError("file map failed", cause)
	require.True(t, errors.As(err, &rerr))
	require.Empty(t, rerr.Object)
}

func TestWrapError_Chain(t *testing.T) {
	base := errors.New("unexpected EOF")
	err := WrapError("file open failed", WrapObjectError(`key "tree"`, "tree load failed", base))

	require.True(t, errors.Is(err, base))
	require.Equal(t, `file open failed: key "tree": tree load failed: unexpected EOF`, err.Error())

	var rerr *Error
	require.True(t, errors.As(errors.Unwrap(err), &rerr))
	require.Equal(t, `key "tree"`, rerr.Object)
}

func BenchmarkWrapObjectError(b *testing.B) {
	base := errors.New("base error")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = WrapObjectError(`tree "events"`, "reader setup failed", base)
	}
}
