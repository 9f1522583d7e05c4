// Package sampling provides parameter spacing policies for discretizing a
// parametric boundary curve. A Spacing maps a point count to an ordered,
// strictly increasing sequence over [0, 1]; Joined maps a policy onto the
// two halves of an airfoil boundary split at the leading edge parameter.
package sampling

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spacing returns n ordered parameter values spanning [0, 1].
type Spacing func(n int) []float64

// Linear is uniform spacing.
func Linear(n int) []float64 {
	s := make([]float64, n)
	floats.Span(s, 0, 1)
	return s
}

// Cosine clusters points toward both ends of the interval.
func Cosine(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		t := float64(i) / float64(n-1)
		s[i] = 0.5 * (1 - math.Cos(math.Pi*t))
	}
	return s
}

// Polynomial returns an end-clustered spacing whose clustering strength
// grows with order. Order 1 reduces to linear spacing.
func Polynomial(order float64) Spacing {
	return func(n int) []float64 {
		s := make([]float64, n)
		for i := range s {
			t := float64(i) / float64(n-1)
			num := math.Pow(t, order)
			s[i] = num / (num + math.Pow(1-t, order))
		}
		// the rational form is exact at the ends, pin them anyway
		s[0] = 0
		s[n-1] = 1
		return s
	}
}

// Conical clusters points toward the start of the interval with geometric
// growth controlled by coeff. coeff 0 reduces to linear spacing.
func Conical(coeff float64) Spacing {
	if coeff == 0 {
		return Linear
	}
	return func(n int) []float64 {
		s := make([]float64, n)
		den := math.Expm1(coeff)
		for i := range s {
			t := float64(i) / float64(n-1)
			s[i] = math.Expm1(coeff*t) / den
		}
		return s
	}
}

// Joined maps fn onto [0, sLE] and [sLE, 1] and joins the halves at the
// leading edge parameter, deduplicating the shared sample. The result has
// exactly n values, ordered, containing 0, sLE and 1.
func Joined(n int, fn Spacing, sLE float64) []float64 {
	n1 := n/2 + 1
	n2 := n - n1 + 1
	s := make([]float64, 0, n)
	for _, v := range fn(n1) {
		s = append(s, v*sLE)
	}
	for _, v := range fn(n2)[1:] {
		s = append(s, sLE+v*(1-sLE))
	}
	return s
}
