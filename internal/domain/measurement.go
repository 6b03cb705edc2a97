package domain

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// HeaderRows is the number of non-data rows at the top of the source file.
	HeaderRows = 8

	// MinColumns is the number of columns every data row must carry.
	MinColumns = 5
)

// valueColumns lists candidate value columns from most to least preferred.
var valueColumns = []int{4, 3, 2, 1}

// RawMeasurement is one data row: its native time label and the selected value (mm).
type RawMeasurement struct {
	Label string
	Value float64
}

// ParseMeasurements reads a GMSL CSV stream, skipping the header block and
// selecting one value per data row. Measurements are returned in source order.
func ParseMeasurements(r io.Reader) ([]RawMeasurement, error) {
	br := bufio.NewReader(r)
	if err := skipHeader(br); err != nil {
		return nil, err
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var out []RawMeasurement
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read data row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		line += HeaderRows

		if isBlank(record) {
			continue
		}
		if len(record) < MinColumns {
			return nil, &FormatError{Row: line, Reason: fmt.Sprintf("expected at least %d columns, found %d", MinColumns, len(record))}
		}

		col, cell := SelectValue(record)
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, &ParseError{Row: line, Column: col, Value: cell, Err: err}
		}
		out = append(out, RawMeasurement{Label: strings.TrimSpace(record[0]), Value: value})
	}
	return out, nil
}

// SelectValue picks the most preferred non-empty value cell of a data row and
// returns its column index and trimmed text. Column 1 is returned even when
// empty, so callers see the parse failure for a row with no value at all.
func SelectValue(record []string) (int, string) {
	for _, col := range valueColumns[:len(valueColumns)-1] {
		if col >= len(record) {
			continue
		}
		if cell := strings.TrimSpace(record[col]); cell != "" {
			return col, cell
		}
	}
	last := valueColumns[len(valueColumns)-1]
	if last >= len(record) {
		return last, ""
	}
	return last, strings.TrimSpace(record[last])
}

// skipHeader consumes HeaderRows physical lines. Blank lines count, since the
// header block is positional rather than CSV-structured.
func skipHeader(br *bufio.Reader) error {
	for skipped := 0; skipped < HeaderRows; skipped++ {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if line != "" && skipped == HeaderRows-1 {
				return nil
			}
			if line != "" {
				skipped++
			}
			return &FormatError{Reason: fmt.Sprintf("expected %d header rows, found %d", HeaderRows, skipped)}
		}
		if err != nil {
			return fmt.Errorf("read header row %d: %w", skipped+1, err)
		}
	}
	return nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
