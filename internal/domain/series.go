package domain

import (
	"fmt"
	"strconv"
)

// YearlySeries maps consecutive calendar years to one value each (mm).
// Years run from Start() to End() inclusive with no gaps; the zero value is an
// empty series.
type YearlySeries struct {
	start  int
	values []float64
}

// YearValue is one entry of a YearlySeries.
type YearValue struct {
	Year  int     `json:"year" yaml:"year"`
	Value float64 `json:"value" yaml:"value"`
}

// NewYearlySeries returns a series whose first value belongs to start.
// The values slice is copied.
func NewYearlySeries(start int, values []float64) YearlySeries {
	if len(values) == 0 {
		return YearlySeries{}
	}
	return YearlySeries{start: start, values: append([]float64(nil), values...)}
}

// Len returns the number of years in the series.
func (s YearlySeries) Len() int { return len(s.values) }

// Empty reports whether the series holds no years.
func (s YearlySeries) Empty() bool { return len(s.values) == 0 }

// Start returns the first year, or 0 for an empty series.
func (s YearlySeries) Start() int { return s.start }

// End returns the last year, or 0 for an empty series.
func (s YearlySeries) End() int {
	if s.Empty() {
		return 0
	}
	return s.start + len(s.values) - 1
}

// At returns the value for year and whether the year is inside the series.
func (s YearlySeries) At(year int) (float64, bool) {
	i := year - s.start
	if s.Empty() || i < 0 || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], true
}

// Lookup returns the value for a year label such as "2050". Labels that are
// not a year or fall outside the series report false.
func (s YearlySeries) Lookup(label string) (float64, bool) {
	year, err := strconv.Atoi(label)
	if err != nil {
		return 0, false
	}
	return s.At(year)
}

// Values returns a copy of the values in year order.
func (s YearlySeries) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Points returns the series as year/value pairs in year order.
func (s YearlySeries) Points() []YearValue {
	points := make([]YearValue, len(s.values))
	for i, v := range s.values {
		points[i] = YearValue{Year: s.start + i, Value: v}
	}
	return points
}

// Map applies fn to every value and returns the resulting series.
func (s YearlySeries) Map(fn func(float64) float64) YearlySeries {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = fn(v)
	}
	return YearlySeries{start: s.start, values: out}
}

func (s YearlySeries) String() string {
	if s.Empty() {
		return "YearlySeries{}"
	}
	return fmt.Sprintf("YearlySeries{%d-%d %v}", s.start, s.End(), s.values)
}
