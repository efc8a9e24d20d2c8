package manifest

import "fmt"

// FileAccessError reports a manifest that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports a manifest whose content is not well-formed JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports a field that holds the wrong kind of value.
type ShapeError struct {
	Path  string
	Field string
	Kind  Kind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("manifest %s: field %q is a %s, expected a mapping", e.Path, e.Field, e.Kind)
}
