package utils

import "fmt"

// Error records a failed step of reading a ROOT file. Object names the
// key, tree or column involved and may be empty for file-level steps.
type Error struct {
	Object string
	Op     string
	Cause  error
}

func (e *Error) Error() string {
	if e.Object == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Object, e.Op, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WrapError wraps cause with the file-level step that failed.
// A nil cause yields nil.
func WrapError(op string, cause error) error {
	return WrapObjectError("", op, cause)
}

// WrapObjectError wraps cause with the step that failed on a named object,
// such as `tree "events"`. A nil cause yields nil.
func WrapObjectError(object, op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Object: object, Op: op, Cause: cause}
}
