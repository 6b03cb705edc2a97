package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writer prints reports to a terminal or pipe.
// It implements pipeline.Sink.
type Writer struct {
	out    io.Writer
	format string
}

// NewWriter creates a Writer for one of FormatText, FormatJSON or FormatYAML.
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Writer{out: out, format: format}, nil
}

// Write renders the combined series and its factor breakdown.
func (w *Writer) Write(_ context.Context, report domain.Report) error {
	doc := newDocument(report)
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
	default:
		if _, err := io.WriteString(w.out, renderText(doc)); err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
	}
	return nil
}

// Row kinds.
const (
	KindObserved  = "observed"
	KindProjected = "projected"
)

type document struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Records     int       `json:"records" yaml:"records"`
	FirstYear   int       `json:"first_year" yaml:"first_year"`
	LastYear    int       `json:"last_year" yaml:"last_year"`
	Years       []yearRow `json:"years" yaml:"years"`
}

type yearRow struct {
	Year         int     `json:"year" yaml:"year"`
	Kind         string  `json:"kind" yaml:"kind"`
	GMSL         float64 `json:"gmsl_mm" yaml:"gmsl_mm"`
	HeatCapacity float64 `json:"heat_capacity_mm" yaml:"heat_capacity_mm"`
	Glaciers     float64 `json:"glaciers_mm" yaml:"glaciers_mm"`
	IceSheets    float64 `json:"ice_sheets_mm" yaml:"ice_sheets_mm"`
}

func newDocument(r domain.Report) document {
	doc := document{
		GeneratedAt: r.GeneratedAt,
		Source:      r.Source,
		Records:     r.Records,
		FirstYear:   r.Combined.Start(),
		LastYear:    r.Combined.End(),
		Years:       make([]yearRow, 0, r.Combined.Len()),
	}
	observedUntil := r.Historical.End()
	if first := domain.Eras[0].Boundary; observedUntil > first {
		observedUntil = first
	}
	for _, p := range r.Combined.Points() {
		c, _ := r.Factors.At(p.Year)
		kind := KindProjected
		if _, ok := r.Historical.At(p.Year); ok && p.Year <= observedUntil {
			kind = KindObserved
		}
		doc.Years = append(doc.Years, yearRow{
			Year:         p.Year,
			Kind:         kind,
			GMSL:         p.Value,
			HeatCapacity: c.HeatCapacity,
			Glaciers:     c.Glaciers,
			IceSheets:    c.IceSheets,
		})
	}
	return doc
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	projectedStyle = cellStyle.Foreground(lipgloss.Color("#AAAAAA"))
)

func renderText(doc document) string {
	rows := make([][]string, 0, len(doc.Years))
	for _, y := range doc.Years {
		rows = append(rows, []string{
			strconv.Itoa(y.Year),
			y.Kind,
			mm(y.GMSL),
			mm(y.HeatCapacity),
			mm(y.Glaciers),
			mm(y.IceSheets),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Headers("YEAR", "KIND", "GMSL (mm)", "HEAT (mm)", "GLACIERS (mm)", "ICE SHEETS (mm)").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][1] == KindProjected:
				return projectedStyle
			default:
				return cellStyle
			}
		})

	title := titleStyle.Render(fmt.Sprintf("Global mean sea level %d-%d", doc.FirstYear, doc.LastYear))
	return title + "\n" + t.String() + "\n"
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', domain.Precision, 64)
}
