package linechart

import "fmt"

// InvalidPathError reports a path description that failed the
// character-class or structure checks. The parser never returns a
// partial command list alongside it.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// InvalidCoordinateError reports a numeric token that could not be
// parsed as a coordinate.
type InvalidCoordinateError struct {
	Token string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate token %q", e.Token)
}

// AlignmentError is reserved for alignment strategies that can fail to
// produce equally shaped sequences. The current padding rules always
// succeed, so nothing returns it yet.
type AlignmentError struct {
	Reason string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("cannot align paths: %s", e.Reason)
}
