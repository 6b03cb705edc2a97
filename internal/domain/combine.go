package domain

import "fmt"

// Combine merges series into one. Where series share a year, the later
// argument wins. Empty series are skipped. The parts must leave no year
// uncovered between the earliest start and the latest end.
func Combine(parts ...YearlySeries) (YearlySeries, error) {
	first, last := 0, 0
	seen := false
	for _, p := range parts {
		if p.Empty() {
			continue
		}
		if !seen || p.Start() < first {
			first = p.Start()
		}
		if !seen || p.End() > last {
			last = p.End()
		}
		seen = true
	}
	if !seen {
		return YearlySeries{}, nil
	}

	values := make([]float64, last-first+1)
	covered := make([]bool, len(values))
	for _, p := range parts {
		for i, v := range p.values {
			idx := p.start + i - first
			values[idx] = v
			covered[idx] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			return YearlySeries{}, &FormatError{Reason: fmt.Sprintf("combined series has no value for %d", first+i)}
		}
	}
	return YearlySeries{start: first, values: values}, nil
}
