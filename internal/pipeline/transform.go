package pipeline

import (
	"fmt"
	"time"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
)

type result struct {
	historical  domain.YearlySeries
	projections map[domain.Era]domain.YearlySeries
	combined    domain.YearlySeries
	factors     domain.FactorSeries
}

// transform runs the in-memory stages over loaded measurements.
func (p *Pipeline) transform(raw []domain.RawMeasurement) (result, error) {
	start := time.Now()
	hist, err := domain.AggregateYearly(raw)
	if err != nil {
		return result{}, fmt.Errorf("aggregate yearly: %w", err)
	}
	p.observe("aggregate", start)
	p.metrics.YearsAggregated.Set(float64(hist.Len()))
	p.logger.Info("yearly aggregate built", "first_year", hist.Start(), "last_year", hist.End())

	start = time.Now()
	projections, err := p.project(hist)
	if err != nil {
		return result{}, err
	}
	p.observe("project", start)

	start = time.Now()
	parts := []domain.YearlySeries{hist}
	for _, era := range domain.Eras {
		parts = append(parts, projections[era])
	}
	combined, err := domain.Combine(parts...)
	if err != nil {
		return result{}, fmt.Errorf("combine series: %w", err)
	}
	if err := domain.CheckContinuity(combined, projections); err != nil {
		return result{}, &InvariantError{Err: err}
	}
	p.observe("combine", start)
	p.metrics.CombinedYears.Set(float64(combined.Len()))

	start = time.Now()
	factors := domain.Decompose(combined)
	if err := domain.CheckDecomposition(combined, factors); err != nil {
		return result{}, &InvariantError{Err: err}
	}
	p.observe("decompose", start)

	return result{
		historical:  hist,
		projections: projections,
		combined:    combined,
		factors:     factors,
	}, nil
}

// project chains the eras: each one is seeded by the value the previous
// series holds at its boundary year.
func (p *Pipeline) project(hist domain.YearlySeries) (map[domain.Era]domain.YearlySeries, error) {
	projections := make(map[domain.Era]domain.YearlySeries, len(domain.Eras))
	prev := hist
	for _, era := range domain.Eras {
		seed, ok := prev.At(era.Boundary)
		if !ok {
			return nil, fmt.Errorf("project %s: %w", era.Name, &domain.FormatError{
				Reason: fmt.Sprintf("no value for boundary year %d (series covers %d-%d)", era.Boundary, prev.Start(), prev.End()),
			})
		}
		series, err := era.Project(seed)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", era.Name, err)
		}
		projections[era] = series
		p.metrics.ProjectedYears.WithLabelValues(era.Name).Add(float64(era.Years()))
		p.logger.Debug("era projected", "era", era.Name, "seed", seed, "rate", era.Rate)
		prev = series
	}
	return projections, nil
}
