package excel

import (
	"errors"
	"fmt"
)

// ErrSourceRead matches every *SourceReadError.
var ErrSourceRead = errors.New("source read failed")

// ErrNoSheet indicates a workbook without worksheets.
var ErrNoSheet = errors.New("workbook has no sheets")

var (
	ErrRegistryPosition  = errors.New("registry position out of range")
	ErrRegistryDuplicate = errors.New("table already registered")
)

// SourceReadError reports a workbook that could not be opened or parsed.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

func (e *SourceReadError) Is(target error) bool {
	return target == ErrSourceRead
}
