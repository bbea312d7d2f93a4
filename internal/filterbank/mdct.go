package filterbank

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/fft"
)

// mdct computes the MDCT of 2n samples to n coefficients and back.
//
// With X[k] = 2 * sum z[i] cos(2pi/(2n) * (i + n0) * (k + 1/2)) for the
// forward and x[i] = 1/n * sum X[k] cos(...) for the inverse, windowed
// overlap-add of consecutive inverse blocks reconstructs the input.
//
// Sizes that are a multiple of 8 with n/2 splitting into the FFT radices
// run through an n/2 point complex FFT. Other sizes are summed directly.
//
// Source: ISO/IEC 14496-3 4.6.11.3.1 (imdct) and 4.6.20.3 (ltp mdct)
type mdct struct {
	n int

	// FFT algorithm
	fft    *fft.FFT
	sincos []complex64 // sqrt(1/n) * exp(2 pi i (k + 1/8) / 2n), k < n/2
	z      []complex64

	// direct summation
	cos []float32 // cos(2*pi*i / (8n)), i < 8n
}

// newMDCT creates the transform for n coefficients.
//
// Ported from: faad_mdct_init() in ~/dev/faad2/libfaad/mdct.c:62-105
func newMDCT(n int) *mdct {
	m := &mdct{n: n}
	if n%8 == 0 {
		if f, err := fft.New(n / 2); err == nil {
			m.fft = f
			m.z = make([]complex64, n/2)
			m.sincos = make([]complex64, n/2)
			scale := math.Sqrt(1 / float64(n))
			for k := range m.sincos {
				arg := 2 * math.Pi * (float64(k) + 1.0/8) / float64(2*n)
				m.sincos[k] = complex(float32(math.Cos(arg)*scale), float32(math.Sin(arg)*scale))
			}
			return m
		}
	}
	m.initDirect()
	return m
}

func (m *mdct) initDirect() {
	m.cos = make([]float32, 8*m.n)
	for i := range m.cos {
		m.cos[i] = float32(math.Cos(2 * math.Pi * float64(i) / float64(8*m.n)))
	}
}

// inverse writes 2n time samples from n coefficients.
//
// Ported from: faad_imdct() in ~/dev/faad2/libfaad/mdct.c:122-226
func (m *mdct) inverse(in, out []float32) {
	if m.fft == nil {
		m.inverseDirect(in, out)
		return
	}
	n2, n4, n8 := m.n, m.n/2, m.n/4
	z, sc := m.z, m.sincos

	for k := 0; k < n4; k++ {
		z[k] = complex(in[n2-1-2*k], in[2*k]) * sc[k]
	}
	m.fft.Backward(z)
	for k := 0; k < n4; k++ {
		z[k] *= sc[k]
	}

	for k := 0; k < n8; k += 2 {
		out[2*k] = imag(z[n8+k])
		out[2+2*k] = imag(z[n8+1+k])
		out[1+2*k] = -real(z[n8-1-k])
		out[3+2*k] = -real(z[n8-2-k])

		out[n4+2*k] = real(z[k])
		out[n4+2+2*k] = real(z[1+k])
		out[n4+1+2*k] = -imag(z[n4-1-k])
		out[n4+3+2*k] = -imag(z[n4-2-k])

		out[n2+2*k] = real(z[n8+k])
		out[n2+2+2*k] = real(z[n8+1+k])
		out[n2+1+2*k] = -imag(z[n8-1-k])
		out[n2+3+2*k] = -imag(z[n8-2-k])

		out[n2+n4+2*k] = -imag(z[k])
		out[n2+n4+2+2*k] = -imag(z[1+k])
		out[n2+n4+1+2*k] = real(z[n4-1-k])
		out[n2+n4+3+2*k] = real(z[n4-2-k])
	}
}

// forward writes n coefficients from 2n time samples.
//
// Ported from: faad_mdct() in ~/dev/faad2/libfaad/mdct.c:229-309
func (m *mdct) forward(in, out []float32) {
	if m.fft == nil {
		m.forwardDirect(in, out)
		return
	}
	n, n2, n4, n8 := 2*m.n, m.n, m.n/2, m.n/4
	z, sc := m.z, m.sincos
	scale := complex(float32(n), 0)

	for k := 0; k < n8; k++ {
		i := 2 * k
		x := complex(in[n-n4-1-i]+in[n-n4+i], in[n4+i]-in[n4-1-i])
		z[k] = x * conj(sc[k]) * scale
		x = complex(in[n2-1-i]-in[i], in[n2+i]+in[n-1-i])
		z[k+n8] = x * conj(sc[k+n8]) * scale
	}
	m.fft.Forward(z)
	for k := 0; k < n4; k++ {
		x := z[k] * conj(sc[k])
		out[2*k] = -real(x)
		out[n2-1-2*k] = imag(x)
	}
}

func conj(c complex64) complex64 {
	return complex(real(c), -imag(c))
}

// The cosine argument is 2pi * (2i + 1 + n)(2k + 1) / (8n), so the table
// index steps by 2(2i + 1 + n) per coefficient.

func (m *mdct) inverseDirect(in, out []float32) {
	if m.cos == nil {
		m.initDirect()
	}
	period := 8 * m.n
	scale := 1 / float32(m.n)
	for i := 0; i < 2*m.n; i++ {
		base := (2*i + 1 + m.n) % period
		step := 2 * base % period
		idx := base
		var sum float32
		for k := 0; k < m.n; k++ {
			sum += in[k] * m.cos[idx]
			idx += step
			if idx >= period {
				idx -= period
			}
		}
		out[i] = sum * scale
	}
}

func (m *mdct) forwardDirect(in, out []float32) {
	if m.cos == nil {
		m.initDirect()
	}
	period := 8 * m.n
	for k := 0; k < m.n; k++ {
		base := (2*k + 1) * (1 + m.n) % period
		step := 2 * (2*k + 1) % period
		idx := base
		var sum float32
		for i := 0; i < 2*m.n; i++ {
			sum += in[i] * m.cos[idx]
			idx += step
			if idx >= period {
				idx -= period
			}
		}
		out[k] = 2 * sum
	}
}
