package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraNearTerm_Project(t *testing.T) {
	got, err := EraNearTerm.Project(50.0)
	require.NoError(t, err)

	assert.Equal(t, 2020, got.Start())
	assert.Equal(t, 2080, got.End())

	expect := map[int]float64{2020: 50.0, 2021: 53.3, 2022: 56.6, 2080: 248.0}
	for year, want := range expect {
		v, ok := got.At(year)
		require.True(t, ok, "year %d", year)
		assert.Equal(t, want, v, "year %d", year)
	}
}

func TestEraLateCentury_Project(t *testing.T) {
	got, err := EraLateCentury.Project(248.0)
	require.NoError(t, err)

	assert.Equal(t, 2080, got.Start())
	assert.Equal(t, 2100, got.End())

	v, _ := got.At(2081)
	assert.Equal(t, 260.0, v)
	v, _ = got.At(2100)
	assert.Equal(t, 488.0, v)
}

func TestEra_Project_Sequential(t *testing.T) {
	era := Era{Name: "test", Boundary: 2000, End: 2003, Rate: 0.333}
	got, err := era.Project(0.004)
	require.NoError(t, err)

	// each step rounds the previous rounded value
	assert.Equal(t, []float64{0.004, 0.34, 0.67, 1.0}, got.Values())

	again, err := era.Project(0.004)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestEra_Project_NonFiniteSeed(t *testing.T) {
	for _, seed := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := EraNearTerm.Project(seed)
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 2020, de.Year)
	}
}

func TestEra_Years(t *testing.T) {
	assert.Equal(t, 60, EraNearTerm.Years())
	assert.Equal(t, 20, EraLateCentury.Years())
	assert.Equal(t, 0, Era{Boundary: 2000, End: 1990}.Years())
}
