package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// DecompositionTolerance bounds |sum(parts) - total| for a decomposed value:
// three independent roundings, each off by at most half a hundredth.
const DecompositionTolerance = 3*0.005 + 1e-9

// CheckContinuity verifies that every era's boundary year in combined holds
// exactly the value the era was seeded with, and that the era's projected
// years appear unchanged.
func CheckContinuity(combined YearlySeries, projections map[Era]YearlySeries) error {
	for _, era := range Eras {
		proj, ok := projections[era]
		if !ok {
			continue
		}
		for _, p := range proj.Points() {
			got, ok := combined.At(p.Year)
			if !ok {
				return fmt.Errorf("era %s: combined series missing %d", era.Name, p.Year)
			}
			if got != p.Value {
				return fmt.Errorf("era %s: combined %d = %v, projected %v", era.Name, p.Year, got, p.Value)
			}
		}
	}
	return nil
}

// CheckDecomposition verifies that factors covers the same years as combined
// and that each year's parts add back up to the total within rounding.
func CheckDecomposition(combined YearlySeries, factors FactorSeries) error {
	if combined.Len() != factors.Len() || combined.Start() != factors.Start() {
		return fmt.Errorf("factor years %d-%d do not match series years %d-%d",
			factors.Start(), factors.End(), combined.Start(), combined.End())
	}
	for _, p := range combined.Points() {
		c, _ := factors.At(p.Year)
		if !scalar.EqualWithinAbs(c.Total(), p.Value, DecompositionTolerance) {
			return fmt.Errorf("factors for %d sum to %v, expected %v", p.Year, c.Total(), p.Value)
		}
	}
	return nil
}
