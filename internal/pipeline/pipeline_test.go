package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
	"github.com/couchcryptid/sea-level-projection/internal/observability"
	"github.com/couchcryptid/sea-level-projection/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockExtractor struct {
	measurements []domain.RawMeasurement
	err          error
}

func (m *mockExtractor) Extract(_ context.Context) ([]domain.RawMeasurement, error) {
	return m.measurements, m.err
}

func (m *mockExtractor) String() string { return "mock.csv" }

type mockSink struct {
	reports []domain.Report
	err     error
}

func (m *mockSink) Write(_ context.Context, r domain.Report) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, r)
	return nil
}

// historical builds three readings per year from first to last, with the
// given year's mean landing on value.
func historical(first, last int, value func(year int) float64) []domain.RawMeasurement {
	var out []domain.RawMeasurement
	for y := first; y <= last; y++ {
		v := value(y)
		out = append(out,
			domain.RawMeasurement{Label: fmt.Sprintf("%d.0417", y), Value: v - 1},
			domain.RawMeasurement{Label: fmt.Sprintf("%d.5000", y), Value: v},
			domain.RawMeasurement{Label: fmt.Sprintf("%d.9583", y), Value: v + 1},
		)
	}
	return out
}

func linear(year int) float64 { return 50.0 + 3.0*float64(year-2020) }

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	ext := &mockExtractor{measurements: historical(1993, 2020, linear)}
	sink := &mockSink{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, sink, slog.Default(), metrics)
	report, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, "mock.csv", report.Source)
	assert.Equal(t, 28*3, report.Records)

	assert.Equal(t, 1993, report.Combined.Start())
	assert.Equal(t, 2100, report.Combined.End())
	assert.Equal(t, 2100-1993+1, report.Combined.Len())

	expect := map[string]float64{"1993": -31.0, "2020": 50.0, "2021": 53.3, "2022": 56.6, "2080": 248.0, "2081": 260.0, "2100": 488.0}
	for label, want := range expect {
		got, ok := report.Combined.Lookup(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}

	c, ok := report.Factors.At(2100)
	require.True(t, ok)
	assert.Equal(t, []float64{200.08, 170.80, 117.12}, c.Slice())

	assert.Equal(t, float64(84), testutil.ToFloat64(metrics.RecordsLoaded))
	assert.Equal(t, float64(28), testutil.ToFloat64(metrics.YearsAggregated))
	assert.Equal(t, float64(108), testutil.ToFloat64(metrics.CombinedYears))
	assert.Equal(t, float64(60), testutil.ToFloat64(metrics.ProjectedYears.WithLabelValues("2021-2080")))
	assert.Equal(t, float64(20), testutil.ToFloat64(metrics.ProjectedYears.WithLabelValues("2081-2100")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LastRunSuccess))
}

func TestPipeline_Run_Continuity(t *testing.T) {
	ext := &mockExtractor{measurements: historical(2010, 2020, linear)}
	report, err := pipeline.New(ext, nil, slog.Default(), observability.NewMetricsForTesting()).Run(context.Background())
	require.NoError(t, err)

	eraA := report.Projections[domain.EraNearTerm]
	eraB := report.Projections[domain.EraLateCentury]

	seedA, _ := eraA.At(2020)
	hist2020, _ := report.Historical.At(2020)
	comb2020, _ := report.Combined.Lookup("2020")
	assert.Equal(t, hist2020, seedA)
	assert.Equal(t, seedA, comb2020)

	endA, _ := eraA.At(2080)
	seedB, _ := eraB.At(2080)
	comb2080, _ := report.Combined.Lookup("2080")
	assert.Equal(t, endA, seedB)
	assert.Equal(t, endA, comb2080)
}

func TestPipeline_Run_EveryYearOnce(t *testing.T) {
	ext := &mockExtractor{measurements: historical(1993, 2020, linear)}
	report, err := pipeline.New(ext, nil, slog.Default(), observability.NewMetricsForTesting()).Run(context.Background())
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, p := range report.Combined.Points() {
		seen[p.Year]++
	}
	for y := 1993; y <= 2100; y++ {
		assert.Equal(t, 1, seen[y], "year %d", y)
	}
	assert.Len(t, seen, 108)
}

func TestPipeline_Run_HistoryPastBoundary(t *testing.T) {
	ext := &mockExtractor{measurements: historical(2015, 2022, linear)}
	report, err := pipeline.New(ext, nil, slog.Default(), observability.NewMetricsForTesting()).Run(context.Background())
	require.NoError(t, err)

	// projected years replace observed ones after the boundary
	got, _ := report.Combined.At(2022)
	assert.Equal(t, 56.6, got)
	hist, _ := report.Historical.At(2022)
	assert.Equal(t, 56.0, hist)
}

func TestPipeline_Run_Errors(t *testing.T) {
	tests := []struct {
		name string
		ext  *mockExtractor
		kind string
		as   any
	}{
		{
			name: "parse error from source",
			ext:  &mockExtractor{err: &domain.ParseError{Row: 9, Column: 4, Value: "x", Err: errors.New("bad")}},
			kind: "parse",
			as:   new(*domain.ParseError),
		},
		{
			name: "missing boundary year",
			ext:  &mockExtractor{measurements: historical(1993, 2018, linear)},
			kind: "format",
			as:   new(*domain.FormatError),
		},
		{
			name: "malformed label",
			ext:  &mockExtractor{measurements: []domain.RawMeasurement{{Label: "20", Value: 1}}},
			kind: "format",
			as:   new(*domain.FormatError),
		},
		{
			name: "non-finite seed",
			ext:  &mockExtractor{measurements: []domain.RawMeasurement{{Label: "2020.5", Value: math.Inf(1)}}},
			kind: "domain",
			as:   new(*domain.DomainError),
		},
		{
			name: "io failure",
			ext:  &mockExtractor{err: errors.New("disk on fire")},
			kind: "io",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &mockSink{}
			metrics := observability.NewMetricsForTesting()

			_, err := pipeline.New(tt.ext, sink, slog.Default(), metrics).Run(context.Background())
			require.Error(t, err)
			if tt.as != nil {
				assert.ErrorAs(t, err, tt.as)
			}
			assert.Empty(t, sink.reports, "no partial report reaches the sink")
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RunFailures.WithLabelValues(tt.kind)))
			assert.Equal(t, float64(0), testutil.ToFloat64(metrics.LastRunSuccess))
		})
	}
}

func TestPipeline_Run_SinkError(t *testing.T) {
	ext := &mockExtractor{measurements: historical(2019, 2020, linear)}
	sink := &mockSink{err: errors.New("stdout closed")}

	_, err := pipeline.New(ext, sink, slog.Default(), observability.NewMetricsForTesting()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}

func TestPipeline_Run_ContextCancelled(t *testing.T) {
	ext := &mockExtractor{measurements: historical(2019, 2020, linear)}
	sink := &mockSink{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.New(ext, sink, slog.Default(), observability.NewMetricsForTesting()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.reports)
}

func TestPipeline_Run_CanceledKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "canceled while loading", err: fmt.Errorf("read: %w", context.Canceled)},
		{name: "deadline exceeded", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := observability.NewMetricsForTesting()

			_, err := pipeline.New(&mockExtractor{err: tt.err}, &mockSink{}, slog.Default(), metrics).Run(context.Background())
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RunFailures.WithLabelValues("canceled")))
			assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RunFailures.WithLabelValues("io")))
		})
	}

	t.Run("context already done", func(t *testing.T) {
		metrics := observability.NewMetricsForTesting()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pipeline.New(&mockExtractor{}, &mockSink{}, slog.Default(), metrics).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RunFailures.WithLabelValues("canceled")))
	})
}
