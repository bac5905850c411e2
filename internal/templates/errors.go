package templates

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound matches every template lookup failure via errors.Is.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceNotFoundError reports a template that is missing or unreadable.
type ResourceNotFoundError struct {
	Name string // requested template name
	Path string // resolved location on disk
	Err  error  // underlying cause
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found at %s: %v", e.Name, e.Path, e.Err)
}

func (e *ResourceNotFoundError) Unwrap() error { return e.Err }

func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}
