// Command sealevel loads the GMSL dataset, projects it to 2100 and prints the
// combined series with its contribution factors.
//
// Usage:
//
//	go run ./cmd/sealevel -data Datasets/global_mean_sea_level.csv -format yaml
//	go run ./cmd/sealevel -scenario venice -year 2075
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/sea-level-projection/internal/adapter/console"
	"github.com/couchcryptid/sea-level-projection/internal/adapter/csvfile"
	"github.com/couchcryptid/sea-level-projection/internal/config"
	"github.com/couchcryptid/sea-level-projection/internal/observability"
	"github.com/couchcryptid/sea-level-projection/internal/pipeline"
	"github.com/couchcryptid/sea-level-projection/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dataPath := flag.String("data", cfg.DataPath, "path to the GMSL CSV file")
	format := flag.String("format", cfg.OutputFormat, "output format: text, json or yaml")
	scene := flag.String("scenario", "", "print the scaled water level for a scene (human, venice, newyork, amsterdam)")
	year := flag.Int("year", 0, "year to look up with -scenario (defaults to the last projected year)")
	flag.Parse()

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, logger, metrics, *dataPath, *format, *scene, *year, os.Stdout)

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics export failed", "error", err)
		}
	}
	os.Exit(code)
}

func run(ctx context.Context, logger *slog.Logger, metrics *observability.Metrics, dataPath, format, scene string, year int, out io.Writer) int {
	var sink pipeline.Sink
	if scene == "" {
		w, err := console.NewWriter(out, format)
		if err != nil {
			logger.Error("invalid output format", "error", err)
			return 1
		}
		sink = w
	}

	source := csvfile.NewSource(dataPath, logger)
	p := pipeline.New(source, sink, logger, metrics)

	report, err := p.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		return 1
	}
	if scene == "" {
		return 0
	}

	state, err := scenario.ParseState(scene)
	if err != nil {
		logger.Error("invalid scenario", "error", err)
		return 1
	}
	viewer := scenario.NewViewer(report.Combined)
	if err := viewer.Select(state); err != nil {
		logger.Error("invalid scenario", "error", err)
		return 1
	}
	if year == 0 {
		year = report.Combined.End()
	}
	if err := viewer.SetYear(year); err != nil {
		logger.Error("invalid year", "error", err)
		return 1
	}
	raw, scaled, err := viewer.Level()
	if err != nil {
		logger.Error("scenario lookup failed", "error", err)
		return 1
	}
	fmt.Fprintf(out, "%s %d: %.2f mm (display %.2f)\n", state, viewer.Year(), raw, scaled)
	return 0
}
