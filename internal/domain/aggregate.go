package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// yearPrefixLen is how many leading label characters identify the year.
const yearPrefixLen = 4

// AggregateYearly averages measurements per calendar year and rounds each mean.
// Each year's values are summed in source order.
//
// Unlike a plain year->mean mapping, the result must cover a contiguous run of
// years: a year with no measurements between the first and last year present
// is reported as a FormatError instead of being left out.
func AggregateYearly(measurements []RawMeasurement) (YearlySeries, error) {
	groups := make(map[int][]float64)
	for _, m := range measurements {
		year, err := YearOf(m.Label)
		if err != nil {
			return YearlySeries{}, err
		}
		groups[year] = append(groups[year], m.Value)
	}
	if len(groups) == 0 {
		return YearlySeries{}, nil
	}

	years := make([]int, 0, len(groups))
	for y := range groups {
		years = append(years, y)
	}
	sort.Ints(years)

	first, last := years[0], years[len(years)-1]
	values := make([]float64, 0, last-first+1)
	for y := first; y <= last; y++ {
		group, ok := groups[y]
		if !ok {
			return YearlySeries{}, &FormatError{Reason: fmt.Sprintf("no measurements for %d between %d and %d", y, first, last)}
		}
		values = append(values, Round(mean(group)))
	}
	return YearlySeries{start: first, values: values}, nil
}

// YearOf derives the calendar year from the first four characters of a time
// label, e.g. "1993.0115" -> 1993.
func YearOf(label string) (int, error) {
	if len(label) < yearPrefixLen {
		return 0, &FormatError{Reason: fmt.Sprintf("time label %q is shorter than %d characters", label, yearPrefixLen)}
	}
	prefix := label[:yearPrefixLen]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, &FormatError{Reason: fmt.Sprintf("time label %q does not start with a 4-digit year", label)}
		}
	}
	year, _ := strconv.Atoi(prefix)
	return year, nil
}

// mean sums left to right. The order fixes the last bit, which decides
// near-tie roundings.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
