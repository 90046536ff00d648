package parencheck

import (
	"fmt"
)

// SourceReadError is returned when a document could not be loaded. Nothing
// is scanned or reported once a read has failed.
type SourceReadError struct {
	Path string
	Err  error
}

func (e SourceReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e SourceReadError) Unwrap() error {
	return e.Err
}

// ImbalanceError is only produced in strict mode, where findings are
// turned into a failure of the whole run.
type ImbalanceError struct {
	Files  int // files with at least one finding
	Errors int // findings over all files
}

func (e ImbalanceError) Error() string {
	return fmt.Sprintf("parenthesis imbalance: %d errors in %d files", e.Errors, e.Files)
}
