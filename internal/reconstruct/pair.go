package reconstruct

import (
	"github.com/llehouerou/go-aacdec/internal/spectrum"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// processPair reconstructs a channel pair element into output channels
// ch and ch+1.
//
// Ported from: reconstruct_channel_pair() in ~/dev/faad2/libfaad/specrec.c:1014-1230
func (p *Processor) processPair(e *syntax.Pair, res *syntax.DecodeResult, ch int) (int, error) {
	ics1, ics2 := &e.ICS1, &e.ICS2
	l, r := p.spec[0], p.spec[1]
	n := p.cfg.FrameLength

	if err := dequantize(ics1, e.Spec1, l, n); err != nil {
		return 0, err
	}
	if err := dequantize(ics2, e.Spec2, r, n); err != nil {
		return 0, err
	}
	p.pns.PNSDecodePair(ics1, ics2, l, r, n)

	if e.CommonWindow {
		spectrum.MSDecode(ics1, ics2, l, r, n)
	}
	spectrum.ISDecode(ics1, ics2, l, r, n)

	p.mainPrediction(ics1, l, &e.State1)
	p.mainPrediction(ics2, r, &e.State2)

	ltp2, history2 := e.SecondLTP()
	p.ltpPrediction(ics1, &ics1.LTP, l, &e.State1.LTP, e.State1.PrevWindowShape)
	p.ltpPrediction(ics2, ltp2, r, history2, e.State2.PrevWindowShape)

	if err := p.coupler.Apply(syntax.BeforeTNS, true, e.Tag, l, r); err != nil {
		return 0, err
	}
	if ics1.TNSDataPresent {
		spectrum.TNSDecodeFrame(ics1, p.cfg.SFIndex, p.cfg.Profile, l, n)
	}
	if ics2.TNSDataPresent {
		spectrum.TNSDecodeFrame(ics2, p.cfg.SFIndex, p.cfg.Profile, r, n)
	}
	if err := p.coupler.Apply(syntax.AfterTNS, true, e.Tag, l, r); err != nil {
		return 0, err
	}
	p.applyDRC(res, l, ch)
	p.applyDRC(res, r, ch+1)

	out1 := p.synthesize(ics1, l, &e.State1, ch, &e.State1.LTP)
	out2 := p.synthesize(ics2, r, &e.State2, ch+1, &e.State2.LTP, e.SharedHistory())
	if err := p.coupler.Apply(syntax.AfterIMDCT, true, e.Tag, out1, out2); err != nil {
		return 0, err
	}
	if err := gainControl(ics1); err != nil {
		return 0, err
	}
	if err := gainControl(ics2); err != nil {
		return 0, err
	}

	if res.SBRPresent {
		if dec := p.sbrDecoder(&e.SBR, true); dec != nil {
			if err := dec.Process(p.out[ch], p.out[ch+1], p.cfg.SBRDownsampled); err != nil {
				return 0, err
			}
		}
	}
	return 2, nil
}
