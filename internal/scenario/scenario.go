// Package scenario holds the viewer-side model of the sea level simulator:
// which scene is active, how the combined series is scaled for it, and which
// year is selected. Rendering lives elsewhere.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/couchcryptid/sea-level-projection/internal/domain"
)

// State is a named viewer screen.
type State int

const (
	Home State = iota
	Human
	Venice
	NewYork
	Amsterdam
)

var stateNames = map[State]string{
	Home:      "home",
	Human:     "human",
	Venice:    "venice",
	NewYork:   "newyork",
	Amsterdam: "amsterdam",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState resolves a scene name such as "venice" or "new-york".
func ParseState(name string) (State, error) {
	n := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for s, sn := range stateNames {
		if sn == n {
			return s, nil
		}
	}
	return Home, fmt.Errorf("unknown scenario %q", name)
}

// Scale is the divisor that maps millimeters onto each scene's artwork.
var Scale = map[State]float64{
	Human:     3,
	Venice:    13,
	NewYork:   60,
	Amsterdam: 20,
}

// Scenes lists the selectable scenes in menu order.
var Scenes = []State{Human, Venice, NewYork, Amsterdam}

var (
	// ErrInvalidTransition is returned for an event the current state does not accept.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoScene is returned when a water level is requested outside a scene.
	ErrNoScene = errors.New("no scene selected")

	// ErrYearOutOfRange is returned when the selected year has no value.
	ErrYearOutOfRange = errors.New("year out of range")
)

// Viewer is the simulator state machine. Events are Select (Home -> scene)
// and Back (scene -> Home); the selected year is kept across scenes.
type Viewer struct {
	state  State
	year   int
	series domain.YearlySeries
	scaled map[State]domain.YearlySeries
}

// NewViewer starts at Home with the first year of combined selected.
func NewViewer(combined domain.YearlySeries) *Viewer {
	scaled := make(map[State]domain.YearlySeries, len(Scale))
	for s, div := range Scale {
		scaled[s] = Scaled(combined, div)
	}
	return &Viewer{
		state:  Home,
		year:   combined.Start(),
		series: combined,
		scaled: scaled,
	}
}

// Scaled divides every value by divisor for display.
func Scaled(s domain.YearlySeries, divisor float64) domain.YearlySeries {
	return s.Map(func(v float64) float64 { return v / divisor })
}

// State returns the active screen.
func (v *Viewer) State() State { return v.state }

// Year returns the selected year.
func (v *Viewer) Year() int { return v.year }

// Select moves from Home into a scene.
func (v *Viewer) Select(s State) error {
	if v.state != Home {
		return fmt.Errorf("select %s from %s: %w", s, v.state, ErrInvalidTransition)
	}
	if _, ok := Scale[s]; !ok {
		return fmt.Errorf("select %s: %w", s, ErrInvalidTransition)
	}
	v.state = s
	return nil
}

// Back returns from a scene to Home.
func (v *Viewer) Back() error {
	if v.state == Home {
		return fmt.Errorf("back from %s: %w", v.state, ErrInvalidTransition)
	}
	v.state = Home
	return nil
}

// SetYear selects a year. Years outside the series are rejected and the
// previous selection is kept.
func (v *Viewer) SetYear(year int) error {
	if _, ok := v.series.At(year); !ok {
		return fmt.Errorf("select %d (have %d-%d): %w", year, v.series.Start(), v.series.End(), ErrYearOutOfRange)
	}
	v.year = year
	return nil
}

// Step moves the selected year by delta, stopping at the ends of the series.
func (v *Viewer) Step(delta int) {
	y := v.year + delta
	if y < v.series.Start() {
		y = v.series.Start()
	}
	if y > v.series.End() {
		y = v.series.End()
	}
	v.year = y
}

// Level returns the raw (mm) and scene-scaled water level for the selected
// year in the active scene.
func (v *Viewer) Level() (raw, scaled float64, err error) {
	series, ok := v.scaled[v.state]
	if !ok {
		return 0, 0, fmt.Errorf("level in %s: %w", v.state, ErrNoScene)
	}
	raw, ok = v.series.At(v.year)
	if !ok {
		return 0, 0, fmt.Errorf("level for %d: %w", v.year, ErrYearOutOfRange)
	}
	scaled, _ = series.At(v.year)
	return raw, scaled, nil
}
