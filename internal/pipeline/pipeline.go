package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
	"github.com/couchcryptid/sea-level-projection/internal/observability"
)

// Extractor reads raw measurements from the source.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.RawMeasurement, error)
}

// Sink receives the finished report.
type Sink interface {
	Write(ctx context.Context, report domain.Report) error
}

// Pipeline runs load, aggregate, project, combine and decompose once, in order.
type Pipeline struct {
	extractor Extractor
	sink      Sink
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline. A nil sink means the caller consumes the returned report itself.
func New(e Extractor, s Sink, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		sink:      s,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes the pipeline. Any stage error aborts the run; the sink only
// ever sees a complete, checked report.
func (p *Pipeline) Run(ctx context.Context) (domain.Report, error) {
	report, err := p.run(ctx)
	if err != nil {
		p.metrics.RunFailures.WithLabelValues(errorKind(err)).Inc()
		p.metrics.LastRunSuccess.Set(0)
		return domain.Report{}, err
	}
	p.metrics.LastRunSuccess.Set(1)
	return report, nil
}

func (p *Pipeline) run(ctx context.Context) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	start := time.Now()
	raw, err := p.extractor.Extract(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load measurements: %w", err)
	}
	p.observe("load", start)
	p.metrics.RecordsLoaded.Add(float64(len(raw)))
	p.logger.Info("measurements loaded", "records", len(raw))

	res, err := p.transform(raw)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.NewReport(sourceName(p.extractor), len(raw), res.historical, res.combined, res.projections, res.factors)

	if p.sink != nil {
		if err := p.sink.Write(ctx, report); err != nil {
			return domain.Report{}, fmt.Errorf("write report: %w", err)
		}
	}
	p.logger.Info("pipeline complete",
		"first_year", report.Combined.Start(),
		"last_year", report.Combined.End(),
	)
	return report, nil
}

func (p *Pipeline) observe(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// InvariantError reports a produced series that breaks a continuity or
// decomposition guarantee.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string { return "invariant violated: " + e.Err.Error() }

func (e *InvariantError) Unwrap() error { return e.Err }

// errorKind maps an error to the run_failures_total kind label.
func errorKind(err error) string {
	var (
		pe *domain.ParseError
		fe *domain.FormatError
		de *domain.DomainError
		ie *InvariantError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &fe):
		return "format"
	case errors.As(err, &de):
		return "domain"
	case errors.As(err, &ie):
		return "invariant"
	default:
		return "io"
	}
}

func sourceName(e Extractor) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}
