package planerect

import "math"

// computeTrigSeries fills s2kx[k-1] = sin(2kX) and c2kx[k-1] = cos(2kX)
// for k = 1 .. len(s2kx).
func computeTrigSeries(x float64, s2kx, c2kx []float64) {
	for k := range s2kx {
		s2kx[k], c2kx[k] = math.Sincos(2 * x * float64(k+1))
	}
}

// computeHyperbolicSeries fills s2kx[k-1] = sinh(2kX) and
// c2kx[k-1] = cosh(2kX) for k = 1 .. len(s2kx).
func computeHyperbolicSeries(x float64, s2kx, c2kx []float64) {
	for k := range s2kx {
		s2kx[k] = math.Sinh(2 * x * float64(k+1))
		c2kx[k] = math.Cosh(2 * x * float64(k+1))
	}
}

// sinSeries returns sum(coeff[k-1] * sin(2kX)), accumulated from k = 1.
func sinSeries(x float64, coeff []float64) float64 {
	sum := 0.0
	for k, c := range coeff {
		sum += c * math.Sin(2*x*float64(k+1))
	}
	return sum
}
