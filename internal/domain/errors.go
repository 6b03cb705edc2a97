package domain

import (
	"fmt"
	"strconv"
)

// ParseError reports a selected cell that is not a number.
type ParseError struct {
	Row    int // 1-based line in the source, counting header rows
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %d: cannot parse %q as a number: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports input whose structure does not match the expected layout:
// a short header block, a short row, a malformed time label or a year gap.
type FormatError struct {
	Row    int // 0 when the problem is not tied to a single row
	Reason string
}

func (e *FormatError) Error() string {
	if e.Row > 0 {
		return "row " + strconv.Itoa(e.Row) + ": " + e.Reason
	}
	return e.Reason
}

// DomainError reports a projection seed that is NaN or infinite.
type DomainError struct {
	Year  int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("seed for %d is not finite: %v", e.Year, e.Value)
}
