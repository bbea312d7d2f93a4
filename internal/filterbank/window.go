package filterbank

import "math"

// Window shapes as signalled by window_shape.
//
// Source: ~/dev/faad2/libfaad/filtbank.c:70-73
const (
	SineWindow = 0
	KBDWindow  = 1
)

// Kaiser alpha of the KBD windows.
// Source: ISO/IEC 14496-3 4.6.11.3.2
const (
	kbdAlphaLong  = 4
	kbdAlphaShort = 6
)

// windowPair holds the rising halves of the sine and KBD windows for one
// transform length, indexed by shape.
type windowPair [2][]float32

// newWindowPair computes both window shapes with n coefficients, the
// rising half of a 2n window.
func newWindowPair(n int, alpha float64) windowPair {
	return windowPair{sineWindow(n), kbdWindow(n, alpha)}
}

// get returns the window for shape. Values other than KBDWindow select
// the sine window.
func (p windowPair) get(shape uint8) []float32 {
	if shape == KBDWindow {
		return p[KBDWindow]
	}
	return p[SineWindow]
}

// sineWindow returns w[i] = sin(pi/(2n) * (i + 0.5)) for i < n.
func sineWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(math.Sin(math.Pi / float64(2*n) * (float64(i) + 0.5)))
	}
	return w
}

// kbdWindow returns the rising half of a Kaiser-Bessel derived window of
// length 2n: the square root of the running sum of a Kaiser kernel of
// n+1 points, normalized by its total.
func kbdWindow(n int, alpha float64) []float32 {
	kernel := make([]float64, n+1)
	sum := 0.0
	half := float64(n) / 2
	for j := range kernel {
		x := (float64(j) - half) / half
		kernel[j] = besselI0(math.Pi * alpha * math.Sqrt(max(0, 1-x*x)))
		sum += kernel[j]
	}

	w := make([]float32, n)
	acc := 0.0
	for i := range w {
		acc += kernel[i]
		w[i] = float32(math.Sqrt(acc / sum))
	}
	return w
}

// besselI0 evaluates the zeroth order modified Bessel function of the
// first kind by its power series.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	q := x * x / 4
	for k := 1.0; k < 100; k++ {
		term *= q / (k * k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}
