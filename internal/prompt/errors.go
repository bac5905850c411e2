package prompt

import (
	"encoding/json"
	"errors"
)

// ErrMalformedInput matches every payload normalization failure via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports a payload that cannot be normalized to a mapping.
type MalformedInputError struct {
	Reason string
	Err    error // decoder diagnostic, if any
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return "malformed input: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed input: " + e.Reason
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Offset returns the byte offset of a JSON syntax error, if that was the cause.
func (e *MalformedInputError) Offset() (int64, bool) {
	var syntaxErr *json.SyntaxError
	if errors.As(e.Err, &syntaxErr) {
		return syntaxErr.Offset, true
	}
	return 0, false
}
