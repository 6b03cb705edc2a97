// Package domain models global mean sea level (GMSL) measurements and the
// projections derived from them.
//
// # Data Source
//
// Measurements come from a satellite altimetry CSV export. The file starts with
// a fixed block of 8 non-data rows (title, units, citation) which are skipped
// unconditionally.
//
// # Column Layout
//
//	column 0: time label, e.g. "1993.0115" (decimal year) or "1993"
//	column 1: GMSL, least precise source, always present
//	column 2: GMSL, intermediate source
//	column 3: GMSL, intermediate source
//	column 4: GMSL, most precise source
//
// All values are millimeters relative to a fixed baseline and may be negative.
// An empty cell means the source has no value for that row, not zero. The
// loader takes the right-most non-empty column of 4, 3 and 2 and otherwise
// falls back to column 1. See [SelectValue].
//
// # Yearly Aggregation
//
// Rows are grouped by the first four characters of their label and averaged.
// Values are rounded to two decimals at every stage (aggregation, each
// projection step, each factor) using [Round], which rounds the exact binary
// value: 0.41*0.5 is stored just below 0.205 and rounds to 0.2.
//
// # Projection
//
// Two eras extend the historical series with fixed annual rates:
//
//	2021–2080: +3.3 mm/yr  (NASA satellite-era trend), seeded by 2020
//	2081–2100: +12.0 mm/yr (Church et al.), seeded by the projected 2080
//
// Each year is computed from the previous computed value, never from the seed
// directly, so rounding is applied once per step.
//
// # Contribution Factors
//
// Each yearly value is split into ocean heat capacity (41%), glaciers (35%) and
// ice sheets (24%), derived from Table 13.1 of the IPCC AR5 sea level chapter
// (Church et al.). The weights are fixed research constants and sum to 1.00;
// independent rounding means the three parts can differ from the total by up
// to 0.015 mm.
package domain
