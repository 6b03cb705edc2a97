package domain

// Contribution weights per physical cause. They are research constants and
// must not be re-derived.
const (
	HeatCapacityWeight = 0.41
	GlacierWeight      = 0.35
	IceSheetWeight     = 0.24
)

// Contribution splits one year's sea level (mm) by physical cause.
type Contribution struct {
	HeatCapacity float64 `json:"heat_capacity" yaml:"heat_capacity"`
	Glaciers     float64 `json:"glaciers" yaml:"glaciers"`
	IceSheets    float64 `json:"ice_sheets" yaml:"ice_sheets"`
}

// Total returns the sum of the three parts.
func (c Contribution) Total() float64 {
	return c.HeatCapacity + c.Glaciers + c.IceSheets
}

// Slice returns the parts in canonical order: heat capacity, glaciers, ice sheets.
func (c Contribution) Slice() []float64 {
	return []float64{c.HeatCapacity, c.Glaciers, c.IceSheets}
}

// FactorSeries holds one Contribution per year over the same contiguous range
// as the series it was decomposed from.
type FactorSeries struct {
	start int
	items []Contribution
}

// Decompose splits every yearly value by the fixed contribution weights,
// rounding each part on its own.
func Decompose(s YearlySeries) FactorSeries {
	items := make([]Contribution, len(s.values))
	for i, v := range s.values {
		items[i] = Split(v)
	}
	return FactorSeries{start: s.start, items: items}
}

// Split decomposes a single value.
func Split(v float64) Contribution {
	return Contribution{
		HeatCapacity: Round(HeatCapacityWeight * v),
		Glaciers:     Round(GlacierWeight * v),
		IceSheets:    Round(IceSheetWeight * v),
	}
}

// Len returns the number of years.
func (f FactorSeries) Len() int { return len(f.items) }

// Start returns the first year, or 0 when empty.
func (f FactorSeries) Start() int { return f.start }

// End returns the last year, or 0 when empty.
func (f FactorSeries) End() int {
	if len(f.items) == 0 {
		return 0
	}
	return f.start + len(f.items) - 1
}

// At returns the contribution for year and whether it is present.
func (f FactorSeries) At(year int) (Contribution, bool) {
	i := year - f.start
	if len(f.items) == 0 || i < 0 || i >= len(f.items) {
		return Contribution{}, false
	}
	return f.items[i], true
}

// Points returns the contributions in year order.
func (f FactorSeries) Points() []YearContribution {
	out := make([]YearContribution, len(f.items))
	for i, c := range f.items {
		out[i] = YearContribution{Year: f.start + i, Contribution: c}
	}
	return out
}

// YearContribution is one entry of a FactorSeries.
type YearContribution struct {
	Year         int `json:"year" yaml:"year"`
	Contribution `yaml:",inline"`
}
