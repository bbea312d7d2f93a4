// Package filterbank implements the AAC synthesis filter bank (IMDCT,
// windowing and overlap-add) and the forward MDCT used by long term
// prediction.
//
// Ported from: ~/dev/faad2/libfaad/filtbank.c
package filterbank

import (
	"errors"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// ErrFrameLength is returned for frame lengths the filter bank cannot
// split into eight short windows.
var ErrFrameLength = errors.New("filterbank: frame length must be a positive multiple of 8")

// FilterBank holds the transforms and windows for one frame length and
// the overlap of every channel it has processed. Channels are keyed by
// an index chosen by the caller.
//
// Ported from: fb_info struct in ~/dev/faad2/libfaad/structs.h:67-83
type FilterBank struct {
	nlong  int
	nshort int

	long  *mdct
	short *mdct

	longWindows  windowPair
	shortWindows windowPair

	overlap [][]float32

	// scratch
	transf   []float32 // one long or short inverse transform
	windowed []float32 // 2*nlong
}

// New creates a filter bank for frameLength samples per frame.
//
// Ported from: filter_bank_init() in ~/dev/faad2/libfaad/filtbank.c:48-92
func New(frameLength uint16) (*FilterBank, error) {
	if frameLength == 0 || frameLength%8 != 0 {
		return nil, ErrFrameLength
	}
	nlong := int(frameLength)
	nshort := nlong / 8
	return &FilterBank{
		nlong:        nlong,
		nshort:       nshort,
		long:         newMDCT(nlong),
		short:        newMDCT(nshort),
		longWindows:  newWindowPair(nlong, kbdAlphaLong),
		shortWindows: newWindowPair(nshort, kbdAlphaShort),
		transf:       make([]float32, 2*nlong),
		windowed:     make([]float32, 2*nlong),
	}, nil
}

// FrameLength returns the number of samples per frame.
func (fb *FilterBank) FrameLength() int {
	return fb.nlong
}

// Overlap returns the saved second half of channel ch: the samples the
// next frame will add to its first half.
func (fb *FilterBank) Overlap(ch int) []float32 {
	return fb.channel(ch)
}

// Reset clears the overlap of every channel.
func (fb *FilterBank) Reset() {
	for _, o := range fb.overlap {
		clear(o)
	}
}

func (fb *FilterBank) channel(ch int) []float32 {
	for len(fb.overlap) <= ch {
		fb.overlap = append(fb.overlap, nil)
	}
	if fb.overlap[ch] == nil {
		fb.overlap[ch] = make([]float32, fb.nlong)
	}
	return fb.overlap[ch]
}

// Process synthesizes frameLength time samples of channel ch from its
// spectrum. shape is the window shape of this frame and prevShape the
// one of the previous frame, which sets the left half of the window.
//
// Ported from: ifilter_bank() in ~/dev/faad2/libfaad/filtbank.c:164-334
func (fb *FilterBank) Process(seq syntax.WindowSequence, shape, prevShape uint8, spec, out []float32, ch int) {
	overlap := fb.channel(ch)
	buf := fb.windowed

	if seq == syntax.EightShortSequence {
		fb.synthesizeShort(shape, prevShape, spec, buf)
	} else {
		fb.long.inverse(spec[:fb.nlong], fb.transf)
		fb.applyWindow(seq, shape, prevShape, fb.transf, buf)
	}

	for i := 0; i < fb.nlong; i++ {
		out[i] = overlap[i] + buf[i]
	}
	copy(overlap, buf[fb.nlong:])
}

// synthesizeShort overlap-adds the eight short windows inside the long
// block, starting (nlong-nshort)/2 samples in.
func (fb *FilterBank) synthesizeShort(shape, prevShape uint8, spec, buf []float32) {
	clear(buf)
	nshort := fb.nshort
	flat := (fb.nlong - nshort) / 2
	fall := fb.shortWindows.get(shape)
	t := fb.transf[:2*nshort]

	for w := 0; w < 8; w++ {
		rise := fall
		if w == 0 {
			rise = fb.shortWindows.get(prevShape)
		}
		fb.short.inverse(spec[w*nshort:(w+1)*nshort], t)

		base := flat + w*nshort
		for i := 0; i < nshort; i++ {
			buf[base+i] += t[i] * rise[i]
			buf[base+nshort+i] += t[nshort+i] * fall[nshort-1-i]
		}
	}
}

// applyWindow multiplies a 2*nlong block by the window of a long
// sequence.
//
// Ported from: the window construction shared by ifilter_bank() and
// filter_bank_ltp() in ~/dev/faad2/libfaad/filtbank.c:164-400
func (fb *FilterBank) applyWindow(seq syntax.WindowSequence, shape, prevShape uint8, in, out []float32) {
	nlong, nshort := fb.nlong, fb.nshort
	flat := (nlong - nshort) / 2

	// left half
	if seq == syntax.LongStopSequence {
		rise := fb.shortWindows.get(prevShape)
		for i := 0; i < flat; i++ {
			out[i] = 0
		}
		for i := 0; i < nshort; i++ {
			out[flat+i] = in[flat+i] * rise[i]
		}
		copy(out[flat+nshort:nlong], in[flat+nshort:nlong])
	} else {
		rise := fb.longWindows.get(prevShape)
		for i := 0; i < nlong; i++ {
			out[i] = in[i] * rise[i]
		}
	}

	// right half
	if seq == syntax.LongStartSequence {
		fall := fb.shortWindows.get(shape)
		copy(out[nlong:nlong+flat], in[nlong:nlong+flat])
		for i := 0; i < nshort; i++ {
			out[nlong+flat+i] = in[nlong+flat+i] * fall[nshort-1-i]
		}
		for i := nlong + flat + nshort; i < 2*nlong; i++ {
			out[i] = 0
		}
	} else {
		fall := fb.longWindows.get(shape)
		for i := 0; i < nlong; i++ {
			out[nlong+i] = in[nlong+i] * fall[nlong-1-i]
		}
	}
}

// ForwardLTP windows 2*frameLength time samples like a frame of the
// given sequence and transforms them to frameLength MDCT coefficients.
// Short sequences produce zeros; LTP does not predict them.
//
// Ported from: filter_bank_ltp() in ~/dev/faad2/libfaad/filtbank.c:336-400
func (fb *FilterBank) ForwardLTP(seq syntax.WindowSequence, shape, prevShape uint8, in, out []float32) {
	if seq == syntax.EightShortSequence {
		clear(out[:fb.nlong])
		return
	}
	fb.applyWindow(seq, shape, prevShape, in, fb.windowed)
	fb.long.forward(fb.windowed, out)
}
