package domain

import "time"

// Report is the complete pipeline output handed to sinks and viewers.
type Report struct {
	GeneratedAt time.Time
	Source      string
	Records     int
	Historical  YearlySeries
	Projections map[Era]YearlySeries
	Combined    YearlySeries
	Factors     FactorSeries
}

// NewReport stamps a report with the current time.
func NewReport(source string, records int, historical, combined YearlySeries, projections map[Era]YearlySeries, factors FactorSeries) Report {
	return Report{
		GeneratedAt: clock.Now().UTC(),
		Source:      source,
		Records:     records,
		Historical:  historical,
		Projections: projections,
		Combined:    combined,
		Factors:     factors,
	}
}
