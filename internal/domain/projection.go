package domain

import "math"

// Era is a contiguous run of years governed by one fixed annual rate.
// Boundary is the last year before the era; its value seeds the projection.
type Era struct {
	Name     string
	Boundary int
	End      int
	Rate     float64 // mm per year
}

var (
	// EraNearTerm extends the satellite-era trend of 3.3 mm/yr through 2080.
	EraNearTerm = Era{Name: "2021-2080", Boundary: 2020, End: 2080, Rate: 3.3}

	// EraLateCentury applies the accelerated 12 mm/yr average for 2081-2100.
	EraLateCentury = Era{Name: "2081-2100", Boundary: 2080, End: 2100, Rate: 12.0}
)

// Eras lists the projection eras in chronological order.
var Eras = []Era{EraNearTerm, EraLateCentury}

// Project accumulates the era's rate year by year starting from seed. The
// returned series starts at the boundary year holding seed unchanged and ends
// at e.End, so it joins the preceding series without a jump.
func (e Era) Project(seed float64) (YearlySeries, error) {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return YearlySeries{}, &DomainError{Year: e.Boundary, Value: seed}
	}
	values := make([]float64, 0, e.Years()+1)
	values = append(values, seed)
	prev := seed
	for y := e.Boundary + 1; y <= e.End; y++ {
		prev = Round(prev + e.Rate)
		values = append(values, prev)
	}
	return YearlySeries{start: e.Boundary, values: values}, nil
}

// Years returns how many projected years the era covers, excluding the boundary.
func (e Era) Years() int {
	if e.End < e.Boundary {
		return 0
	}
	return e.End - e.Boundary
}
