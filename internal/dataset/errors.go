package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the input CSV does not exist.
var ErrNotFound = errors.New("dataset file not found")

// ErrUnknownColumn indicates a lookup of a column absent from the header.
var ErrUnknownColumn = errors.New("unknown column")

// MissingColumnsError lists required columns absent from a loaded table.
type MissingColumnsError struct {
	Table   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Table, strings.Join(e.Columns, ", "))
}
