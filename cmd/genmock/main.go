// Command genmock writes a synthetic GMSL dataset in the same layout as the
// satellite altimetry export: an 8-row header followed by one row per ~10-day
// cycle. The preferred value columns are filled sparsely so the loader's
// column fallback is exercised.
//
// Usage:
//
//	go run ./cmd/genmock -out Datasets/global_mean_sea_level.csv -from 1993 -to 2020
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
)

// cyclesPerYear approximates the TOPEX/Jason 9.9156-day repeat cycle.
const cyclesPerYear = 37

type params struct {
	from, to int
	base     float64 // mm at the start of `from`
	trend    float64 // mm per year
	noise    float64 // mm, standard deviation
	seed     uint64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the CSV dataset")
	from := flag.Int("from", 1993, "first year")
	to := flag.Int("to", 2020, "last year")
	base := flag.Float64("base", -38.0, "GMSL in mm at the start of the first year")
	trend := flag.Float64("trend", 3.3, "linear trend in mm per year")
	noise := flag.Float64("noise", 3.0, "noise standard deviation in mm")
	seed := flag.Uint64("seed", 1993, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *to < *from {
		return fmt.Errorf("-to %d is before -from %d", *to, *from)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	p := params{from: *from, to: *to, base: *base, trend: *trend, noise: *noise, seed: *seed}
	rows, err := generate(f, p)
	if err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	log.Printf("%s: %d rows (%d-%d)", *out, rows, p.from, p.to)
	return nil
}

var header = []string{
	"HDR Synthetic Global Mean Sea Level (GMSL) dataset",
	"HDR Units: millimeters, relative to an arbitrary baseline",
	"HDR Generated by cmd/genmock; not an observational record",
	"HDR",
	"HDR column 1: time (decimal year)",
	"HDR column 2: GMSL, unsmoothed",
	"HDR column 3-4: GMSL, intermediate processing",
	"HDR column 5: GMSL, smoothed, seasonal signal removed",
}

// generate writes the dataset and returns the number of data rows.
func generate(w io.Writer, p params) (int, error) {
	for _, line := range header {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return 0, err
		}
	}

	rng := rand.New(rand.NewPCG(p.seed, p.seed^0x5ea1e7e1))
	cw := csv.NewWriter(w)
	rows := 0
	for y := p.from; y <= p.to; y++ {
		for c := 0; c < cyclesPerYear; c++ {
			t := float64(y) + (float64(c)+0.5)/cyclesPerYear
			level := p.base + p.trend*(t-float64(p.from))
			seasonal := 4 * math.Sin(2*math.Pi*(t-math.Floor(t)))

			raw := level + seasonal + rng.NormFloat64()*p.noise
			record := []string{
				strconv.FormatFloat(t, 'f', 4, 64),
				formatMM(raw),
				"", "", "",
			}
			// newer processing levels only exist for part of the record
			if c%4 != 3 {
				record[2] = formatMM(raw - seasonal/2)
			}
			if c%3 != 2 {
				record[3] = formatMM(level + seasonal/4)
			}
			if c%2 == 0 {
				record[4] = formatMM(level)
			}
			if err := cw.Write(record); err != nil {
				return rows, err
			}
			rows++
		}
	}
	cw.Flush()
	return rows, cw.Error()
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
