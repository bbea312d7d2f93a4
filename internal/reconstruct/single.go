package reconstruct

import (
	"github.com/llehouerou/go-aacdec/internal/spectrum"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// processSingle reconstructs a single channel or LFE element into
// output channel ch and returns the number of channels written: 2 when
// parametric stereo expanded it, 1 otherwise.
//
// Ported from: reconstruct_single_channel() in ~/dev/faad2/libfaad/specrec.c:843-1012
func (p *Processor) processSingle(s *syntax.Single, res *syntax.DecodeResult, ch, chs int) (int, error) {
	ics := &s.ICS
	spec := p.spec[0]
	n := p.cfg.FrameLength

	if err := dequantize(ics, s.Spec, spec, n); err != nil {
		return 0, err
	}
	p.pns.PNSDecode(ics, spec, n)

	p.mainPrediction(ics, spec, &s.State)
	p.ltpPrediction(ics, &ics.LTP, spec, &s.State.LTP, s.State.PrevWindowShape)

	if err := p.coupler.Apply(syntax.BeforeTNS, false, s.Tag, spec, nil); err != nil {
		return 0, err
	}
	if ics.TNSDataPresent {
		spectrum.TNSDecodeFrame(ics, p.cfg.SFIndex, p.cfg.Profile, spec, n)
	}
	if err := p.coupler.Apply(syntax.AfterTNS, false, s.Tag, spec, nil); err != nil {
		return 0, err
	}
	p.applyDRC(res, spec, ch)

	out := p.synthesize(ics, spec, &s.State, ch, &s.State.LTP)
	if err := p.coupler.Apply(syntax.AfterIMDCT, false, s.Tag, out, nil); err != nil {
		return 0, err
	}
	if err := gainControl(ics); err != nil {
		return 0, err
	}

	if !res.SBRPresent {
		return 1, nil
	}
	dec := p.sbrDecoder(&s.SBR, false)
	if dec == nil {
		return 1, nil
	}
	var right []float32
	if dec.PSUsed() && ch+1 < chs {
		right = p.out[ch+1]
	}
	if err := dec.Process(p.out[ch], right, p.cfg.SBRDownsampled); err != nil {
		return 0, err
	}
	if right != nil {
		return 2, nil
	}
	return 1, nil
}
