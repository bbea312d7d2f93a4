package reconstruct

import (
	"fmt"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/spectrum"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// couplingChannelBase is the first filter bank channel used by coupling
// elements that mix in after the IMDCT. Output channels stay below it.
const couplingChannelBase = syntax.MaxChannels

// coupled is a coupling element of the current frame with its
// reconstructed signal.
type coupled struct {
	elem *syntax.Coupling
	spec []float32
	time []float32 // AfterIMDCT only
}

// Coupler mixes the coupling channel elements of a frame into their
// target elements.
type Coupler struct {
	cfg *config.DecoderConfig
	fb  FilterBank
	pns *spectrum.PNSState

	active []coupled
	pool   []coupled // buffers kept across frames, indexed by slot
}

// NewCoupler creates a coupler. pns is shared with the channel chains so
// noise is drawn from one generator in element order.
func NewCoupler(cfg *config.DecoderConfig, fb FilterBank, pns *spectrum.PNSState) *Coupler {
	return &Coupler{cfg: cfg, fb: fb, pns: pns}
}

// Prepare reconstructs every coupling element in elements. Spectra are
// dequantized for the dependent points and coupling elements applied
// after the IMDCT are run through the filter bank. It must be called
// once per frame before Apply.
func (c *Coupler) Prepare(elements []syntax.Element) error {
	c.active = c.active[:0]
	n := int(c.cfg.FrameLength)
	slot := 0
	for _, e := range elements {
		cc, ok := e.(*syntax.Coupling)
		if !ok {
			continue
		}
		for len(c.pool) <= slot {
			c.pool = append(c.pool, coupled{})
		}
		k := &c.pool[slot]
		k.elem = cc
		if len(k.spec) != n {
			k.spec = make([]float32, n)
		}
		if err := dequantize(&cc.ICS, cc.Spec, k.spec, c.cfg.FrameLength); err != nil {
			return fmt.Errorf("coupling element %d: %w", cc.Tag, err)
		}
		c.pns.PNSDecode(&cc.ICS, k.spec, c.cfg.FrameLength)

		if cc.Point == syntax.AfterIMDCT {
			if len(k.time) != n {
				k.time = make([]float32, n)
			}
			ics := &cc.ICS
			c.fb.Process(ics.WindowSequence, ics.WindowShape, cc.State.PrevWindowShape,
				k.spec, k.time, couplingChannelBase+slot)
			cc.State.PrevWindowShape = ics.WindowShape
		}
		c.active = append(c.active, *k)
		slot++
	}
	return nil
}

// Apply mixes every coupling element registered for point into the
// target element (isPair, id). buf1 and buf2 are the spectra, or time
// signals for AfterIMDCT, of the target's channels; buf2 is nil for
// single channel targets.
//
// Each target of a coupling element consumes one gain list, or two for
// a pair target coupling into both channels, so indices advance over
// non-matching targets too.
func (c *Coupler) Apply(point syntax.CouplingPoint, isPair bool, id uint8, buf1, buf2 []float32) error {
	for i := range c.active {
		k := &c.active[i]
		if k.elem.Point != point {
			continue
		}
		index := 0
		for _, t := range k.elem.Targets {
			if t.IsPair != isPair || t.ID != id {
				index++
				if t.ChSelect == 3 {
					index++
				}
				continue
			}
			if t.ChSelect != 1 {
				if err := c.mix(k, index, buf1); err != nil {
					return err
				}
				if t.ChSelect != 0 {
					index++
				}
			}
			if t.ChSelect != 2 {
				if err := c.mix(k, index, buf2); err != nil {
					return err
				}
				index++
			}
		}
	}
	return nil
}

// mix adds gain list index of k into dst. A nil dst is skipped.
func (c *Coupler) mix(k *coupled, index int, dst []float32) error {
	if dst == nil {
		return nil
	}
	if index >= len(k.elem.Gains) {
		return fmt.Errorf("%w: %d of %d lists in coupling element %d",
			ErrCouplingGainIndex, index, len(k.elem.Gains), k.elem.Tag)
	}
	gain := &k.elem.Gains[index]
	if k.elem.Point == syntax.AfterIMDCT {
		g := gain[0][0]
		for i, v := range k.time {
			dst[i] += g * v
		}
		return nil
	}
	mixSpectrum(&k.elem.ICS, gain, k.spec, dst, int(c.cfg.FrameLength)/8)
	return nil
}

// mixSpectrum adds gain[g][sfb] * src to dst over every band of the
// coupling channel that carries spectral data.
func mixSpectrum(ics *syntax.ICStream, gain *syntax.CouplingGain, src, dst []float32, nshort int) {
	win := 0
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			if ics.SFBCB[g][sfb] == syntax.ZeroHCB {
				continue
			}
			x := gain[g][sfb]
			low := int(ics.SWBOffset[sfb])
			high := int(min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax))
			for w := 0; w < int(ics.WindowGroupLength[g]); w++ {
				base := (win + w) * nshort
				for k := low; k < high; k++ {
					dst[base+k] += x * src[base+k]
				}
			}
		}
		win += int(ics.WindowGroupLength[g])
	}
}
