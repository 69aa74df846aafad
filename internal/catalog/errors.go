package catalog

import "fmt"

// ParseError reports catalog content that is not valid YAML.
type ParseError struct {
	Path string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse catalog %s: %v", err.Path, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// ShapeError reports YAML that parses but is not a sequence of question mappings.
// Index is -1 when the problem is the top-level value.
type ShapeError struct {
	Path   string
	Index  int
	Reason string
}

func (err *ShapeError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("catalog %s: %s", err.Path, err.Reason)
	}
	return fmt.Sprintf("catalog %s: entry %d: %s", err.Path, err.Index, err.Reason)
}

// WriteError reports a failure while persisting the catalog. The previous
// file content is left in place.
type WriteError struct {
	Path string
	Err  error
}

func (err *WriteError) Error() string {
	return fmt.Sprintf("write catalog %s: %v", err.Path, err.Err)
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
