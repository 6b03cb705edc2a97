// Command validate runs the projection stages one by one over a GMSL dataset
// and checks each stage's guarantees: parsed rows, contiguous yearly
// aggregate, continuity at era boundaries and the factor decomposition.
//
// Usage:
//
//	go run ./cmd/validate -data Datasets/global_mean_sea_level.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "", "path to the GMSL CSV file")
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*dataPath, os.Stdout))
}

func run(dataPath string, out io.Writer) int {
	fmt.Fprintln(out, "=== Sea Level Data Integrity Validation ===")
	fmt.Fprintln(out)

	f, err := os.Open(dataPath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: open dataset: %v\n", err)
		return 1
	}
	defer f.Close()

	var phases []*phase
	st := &state{}

	for _, step := range []func(*state, io.Reader) *phase{
		validateSource,
		validateAggregate,
		validateProjection,
		validateDecomposition,
	} {
		ph := step(st, f)
		phases = append(phases, ph)
		if !ph.passed() {
			break // later phases depend on this one's output
		}
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, ph := range phases {
		status := "PASS"
		if !ph.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Fprintf(out, "[%s] %s\n", status, ph.name)
		for _, e := range ph.errors {
			fmt.Fprintf(out, "       - %s\n", e)
		}
	}

	if !allPassed {
		fmt.Fprintln(out, "\nValidation FAILED")
		return 1
	}
	fmt.Fprintln(out, "\nAll validations passed")
	return 0
}

// state carries each phase's output to the next.
type state struct {
	measurements []domain.RawMeasurement
	historical   domain.YearlySeries
	projections  map[domain.Era]domain.YearlySeries
	combined     domain.YearlySeries
}

func validateSource(st *state, r io.Reader) *phase {
	ph := &phase{name: "Source: header and value columns"}
	ms, err := domain.ParseMeasurements(r)
	if err != nil {
		ph.errorf("%v", err)
		return ph
	}
	if len(ms) == 0 {
		ph.errorf("no data rows after the %d-row header", domain.HeaderRows)
	}
	st.measurements = ms
	return ph
}

func validateAggregate(st *state, _ io.Reader) *phase {
	ph := &phase{name: "Aggregate: one rounded mean per contiguous year"}
	hist, err := domain.AggregateYearly(st.measurements)
	if err != nil {
		ph.errorf("%v", err)
		return ph
	}
	counts := make(map[int]int)
	for _, m := range st.measurements {
		y, _ := domain.YearOf(m.Label)
		counts[y]++
	}
	if len(counts) != hist.Len() {
		ph.errorf("%d distinct years in source, %d in aggregate", len(counts), hist.Len())
	}
	for _, p := range hist.Points() {
		if domain.Round(p.Value) != p.Value {
			ph.errorf("%d: %v is not rounded to %d decimals", p.Year, p.Value, domain.Precision)
		}
	}
	st.historical = hist
	return ph
}

func validateProjection(st *state, _ io.Reader) *phase {
	ph := &phase{name: "Projection: eras chained without jumps"}
	st.projections = make(map[domain.Era]domain.YearlySeries)
	prev := st.historical
	for _, era := range domain.Eras {
		seed, ok := prev.At(era.Boundary)
		if !ok {
			ph.errorf("%s: no value for boundary year %d", era.Name, era.Boundary)
			return ph
		}
		series, err := era.Project(seed)
		if err != nil {
			ph.errorf("%s: %v", era.Name, err)
			return ph
		}
		if series.End() != era.End {
			ph.errorf("%s: ends at %d, want %d", era.Name, series.End(), era.End)
		}
		st.projections[era] = series
		prev = series
	}

	parts := []domain.YearlySeries{st.historical}
	for _, era := range domain.Eras {
		parts = append(parts, st.projections[era])
	}
	combined, err := domain.Combine(parts...)
	if err != nil {
		ph.errorf("%v", err)
		return ph
	}
	if err := domain.CheckContinuity(combined, st.projections); err != nil {
		ph.errorf("%v", err)
	}
	last := domain.Eras[len(domain.Eras)-1].End
	if want := last - st.historical.Start() + 1; combined.Len() != want {
		ph.errorf("combined series has %d years, want %d", combined.Len(), want)
	}
	st.combined = combined
	return ph
}

func validateDecomposition(st *state, _ io.Reader) *phase {
	ph := &phase{name: "Decomposition: factors add up to each year's total"}
	if err := domain.CheckDecomposition(st.combined, domain.Decompose(st.combined)); err != nil {
		ph.errorf("%v", err)
	}
	return ph
}
