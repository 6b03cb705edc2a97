package domain

import "strconv"

// Precision is the number of decimals every stored value is rounded to.
const Precision = 2

// Round rounds v to Precision decimals. The exact binary value is rounded, so
// 0.205 (stored just below the half) becomes 0.2; true ties go to even.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', Precision, 64), 64)
	if err != nil {
		return v
	}
	return r
}
