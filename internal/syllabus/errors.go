package syllabus

import (
	"errors"
	"fmt"
)

// ErrMalformedSource indicates a syllabus file that cannot be read as
// sections of string-valued topics.
var ErrMalformedSource = errors.New("malformed syllabus source")

// SourceError reports a syllabus file that failed to load.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("syllabus %s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
