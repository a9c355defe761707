// Package calc implements the stateless bench calculators: PCR
// annealing temperature, Gibson assembly volumes, restriction digests,
// insert:vector ligation ratios, oligo annealing, and CRISPR gRNA
// primer design. Every function is a pure computation over validated
// numeric or sequence inputs.
package calc

import "math"

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
