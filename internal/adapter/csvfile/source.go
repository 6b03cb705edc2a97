package csvfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
)

// Source reads GMSL measurements from a CSV file on disk.
// It implements pipeline.Extractor.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource creates a file source for path.
func NewSource(path string, logger *slog.Logger) *Source {
	return &Source{path: path, logger: logger}
}

// Extract opens the file, parses it and closes it on every path.
func (s *Source) Extract(_ context.Context) ([]domain.RawMeasurement, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close source file failed", "path", s.path, "error", cerr)
		}
	}()

	measurements, err := domain.ParseMeasurements(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	s.logger.Debug("source parsed", "path", s.path, "records", len(measurements))
	return measurements, nil
}

func (s *Source) String() string { return s.path }
