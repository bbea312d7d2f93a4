// Package fft implements the mixed radix complex FFT used by the fast
// MDCT of the filter bank.
//
// Ported from: ~/dev/faad2/libfaad/cfft.c
package fft

import (
	"errors"
	"math"
)

// ErrSize is returned for sizes with prime factors other than 2, 3 and 5.
var ErrSize = errors.New("fft: size must factor into 2, 3, 4 and 5")

// stage is one radix pass of the transform.
type stage struct {
	radix int
	l1    int // product of the previous radices
	ido   int // n / (l1 * radix)
	tw    int // offset of the stage twiddles
}

// FFT is an unscaled complex FFT of fixed size.
//
// Ported from: cfft_info struct in ~/dev/faad2/libfaad/cfft.h:38-44
type FFT struct {
	n       int
	stages  []stage
	twiddle []complex64
	work    []complex64
}

// New creates an FFT of size n.
//
// Ported from: cffti() in ~/dev/faad2/libfaad/cfft.c:1005-1039
func New(n int) (*FFT, error) {
	factors, ok := factorize(n)
	if n <= 0 || !ok {
		return nil, ErrSize
	}
	f := &FFT{n: n, work: make([]complex64, n)}
	l1 := 1
	for _, p := range factors {
		s := stage{radix: p, l1: l1, ido: n / (l1 * p), tw: len(f.twiddle)}
		for u := 1; u < p; u++ {
			for i := 0; i < s.ido; i++ {
				arg := 2 * math.Pi * float64(i*l1*u) / float64(n)
				f.twiddle = append(f.twiddle, complex(float32(math.Cos(arg)), float32(math.Sin(arg))))
			}
		}
		f.stages = append(f.stages, s)
		l1 *= p
	}
	return f, nil
}

// factorize splits n into radices, trying 3, 4, 2 and 5 in that order.
// A factor 2 is moved to the front.
//
// Ported from: cffti1() in ~/dev/faad2/libfaad/cfft.c:906-956
func factorize(n int) ([]int, bool) {
	var factors []int
	if n <= 0 {
		return nil, false
	}
	for _, p := range [...]int{3, 4, 2, 5} {
		for n%p == 0 {
			n /= p
			if p == 2 {
				factors = append([]int{2}, factors...)
			} else {
				factors = append(factors, p)
			}
		}
	}
	return factors, n == 1
}

// Len returns the transform size.
func (f *FFT) Len() int {
	return f.n
}

// Forward computes X[k] = sum x[m] exp(-2 pi i m k / n) in place.
//
// Ported from: cfftf() in ~/dev/faad2/libfaad/cfft.c:896-899
func (f *FFT) Forward(c []complex64) {
	f.transform(c, -1)
}

// Backward computes x[m] = sum X[k] exp(2 pi i m k / n) in place,
// without the 1/n scaling.
//
// Ported from: cfftb() in ~/dev/faad2/libfaad/cfft.c:901-904
func (f *FFT) Backward(c []complex64) {
	f.transform(c, 1)
}

// transform runs every stage, alternating between c and the work
// buffer.
//
// Ported from: cfftf1pos() and cfftf1neg() in ~/dev/faad2/libfaad/cfft.c:740-894
func (f *FFT) transform(c []complex64, sign int) {
	in, out := c[:f.n], f.work
	for _, s := range f.stages {
		f.pass(s, in, out, sign)
		in, out = out, in
	}
	if &in[0] != &c[0] {
		copy(c, in)
	}
}

// pass computes one radix stage: a length radix DFT over every group of
// inputs, followed by the twiddle rotation of each output.
//
// Ported from: passf2pos() through passf5() in ~/dev/faad2/libfaad/cfft.c:70-738
func (f *FFT) pass(s stage, in, out []complex64, sign int) {
	p, ido, l1 := s.radix, s.ido, s.l1
	var roots [5]complex64
	for j := 0; j < p; j++ {
		arg := float64(sign) * 2 * math.Pi * float64(j) / float64(p)
		roots[j] = complex(float32(math.Cos(arg)), float32(math.Sin(arg)))
	}
	tw := f.twiddle[s.tw:]

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			src := i + ido*p*k
			for u := 0; u < p; u++ {
				var y complex64
				for m := 0; m < p; m++ {
					y += in[src+ido*m] * roots[m*u%p]
				}
				if u > 0 && i > 0 {
					w := tw[(u-1)*ido+i]
					if sign < 0 {
						w = complex(real(w), -imag(w))
					}
					y *= w
				}
				out[i+ido*(k+l1*u)] = y
			}
		}
	}
}
