// Package reconstruct turns the elements of a decoded frame into time
// domain channel buffers. Each channel element runs through its
// spectral chain, the filter bank and, when present, SBR; coupling
// channels are mixed into their targets at the point they signal.
package reconstruct

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/spectrum"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// FilterBank is the synthesis filter bank. It is satisfied by
// *filterbank.FilterBank.
type FilterBank interface {
	// Process synthesizes frameLength samples of channel ch into out and
	// keeps the second half of the block as the channel's overlap.
	Process(seq syntax.WindowSequence, shape, prevShape uint8, spec, out []float32, ch int)

	// Overlap returns the samples channel ch adds to the next frame.
	Overlap(ch int) []float32

	spectrum.ForwardFilterBank
}

// Processor runs the per-frame reconstruction. It owns the output
// buffer matrix, which is reused while the channel count and length
// stay the same.
type Processor struct {
	cfg     *config.DecoderConfig
	fb      FilterBank
	log     zerolog.Logger
	sbr     syntax.SBRFactory
	pns     *spectrum.PNSState
	coupler *Coupler

	drc        bool
	cut, boost float32

	out  buffers
	spec [2][]float32
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithSBR sets the factory used when a frame signals SBR for an element
// that has no decoder yet.
func WithSBR(f syntax.SBRFactory) Option {
	return func(p *Processor) { p.sbr = f }
}

// WithDRC enables dynamic range control with the given compression and
// boost factors, both in [0, 1].
func WithDRC(cut, boost float32) Option {
	return func(p *Processor) {
		p.drc = true
		p.cut, p.boost = cut, boost
	}
}

// New creates a Processor. cfg is shared with the dispatcher and read
// on every frame.
func New(cfg *config.DecoderConfig, fb FilterBank, opts ...Option) *Processor {
	p := &Processor{
		cfg: cfg,
		fb:  fb,
		log: zerolog.Nop(),
		pns: spectrum.NewPNSState(),
	}
	for _, o := range opts {
		o(p)
	}
	p.coupler = NewCoupler(cfg, fb, p.pns)
	return p
}

// Reset restarts the noise generator. Per-channel history lives in the
// element store and is reset there.
func (p *Processor) Reset() {
	p.pns = spectrum.NewPNSState()
	p.coupler.pns = p.pns
}

// Process reconstructs the frame described by res. The returned matrix
// has one row per output channel, each holding frameLength samples, or
// twice that when SBR is present. It stays valid until the next call.
//
// Ported from: SyntacticElements.process() in JAAD and the channel loop
// of decode_*() in ~/dev/faad2/libfaad/specrec.c
func (p *Processor) Process(res *syntax.DecodeResult) ([][]float32, error) {
	chs := p.cfg.ChannelCount()
	if chs == 0 {
		chs = res.OutputChannels
	}
	if chs == 0 {
		return nil, ErrNoChannels
	}
	if chs == 1 && res.PSPresent {
		chs++
	}
	mult := 1
	if res.SBRPresent {
		mult = 2
	}
	n := int(p.cfg.FrameLength)
	p.out = p.out.resize(chs, mult*n)
	for i := range p.spec {
		if len(p.spec[i]) != n {
			p.spec[i] = make([]float32, n)
		}
	}

	if err := p.coupler.Prepare(res.Elements); err != nil {
		return nil, err
	}

	ch := 0
	for _, e := range res.Elements {
		if ch >= chs {
			break
		}
		var (
			used int
			err  error
		)
		switch el := e.(type) {
		case *syntax.Single:
			used, err = p.processSingle(el, res, ch, chs)
		case *syntax.Pair:
			if ch+2 > chs {
				return nil, fmt.Errorf("%w: pair %d at channel %d of %d",
					ErrChannelOverflow, el.Tag, ch, chs)
			}
			used, err = p.processPair(el, res, ch)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", e.Kind(), ch, err)
		}
		ch += used
	}
	return p.out, nil
}

// dequantize rebuilds the scaled spectrum of one channel from its
// quantized coefficients: pulses first, then inverse quantization with
// the scalefactors applied.
func dequantize(ics *syntax.ICStream, quant []int16, spec []float32, frameLength uint16) error {
	if ics.PulseDataPresent {
		if err := spectrum.PulseDecode(ics, quant, frameLength); err != nil {
			return err
		}
	}
	return spectrum.Dequantize(ics, quant, spec, frameLength)
}

// mainPrediction runs the main profile backward adaptive predictor of
// one channel. Noise bands never feed the predictor.
func (p *Processor) mainPrediction(ics *syntax.ICStream, spec []float32, st *syntax.ChannelState) {
	if p.cfg.Profile != config.ObjectTypeMain || !ics.PredictorDataPresent {
		return
	}
	if len(st.Pred) != int(p.cfg.FrameLength) {
		st.Pred = make([]syntax.PredState, p.cfg.FrameLength)
		spectrum.ResetAllPredictors(st.Pred)
	}
	spectrum.ICPrediction(ics, spec, st.Pred, p.cfg.FrameLength, p.cfg.SFIndex)
	spectrum.PNSResetPredState(ics, st.Pred)
}

// ltpPrediction adds the long term prediction from history.
func (p *Processor) ltpPrediction(ics *syntax.ICStream, ltp *syntax.LTPInfo, spec []float32, history *[]int16, prevShape uint8) {
	if !p.cfg.Profile.IsLTP() {
		return
	}
	p.ensureLTP(history)
	spectrum.LTPPrediction(ics, ltp, spec, *history, p.fb, p.cfg.SFIndex, p.cfg.Profile,
		p.cfg.FrameLength, ics.WindowShape, prevShape)
}

func (p *Processor) ensureLTP(history *[]int16) {
	if len(*history) != 4*int(p.cfg.FrameLength) {
		*history = spectrum.LTPState(p.cfg.FrameLength)
	}
}

// synthesize runs the filter bank for channel ch, updates every non-nil
// LTP history and moves the window shape into the channel state.
func (p *Processor) synthesize(ics *syntax.ICStream, spec []float32, st *syntax.ChannelState, ch int, histories ...*[]int16) []float32 {
	out := p.out[ch][:p.cfg.FrameLength]
	p.fb.Process(ics.WindowSequence, ics.WindowShape, st.PrevWindowShape, spec, out, ch)
	if p.cfg.Profile.IsLTP() {
		for _, h := range histories {
			if h == nil {
				continue
			}
			p.ensureLTP(h)
			spectrum.LTPUpdateState(*h, out, p.fb.Overlap(ch), p.cfg.FrameLength, p.cfg.Profile)
		}
	}
	st.PrevWindowShape = ics.WindowShape
	return out
}

// applyDRC scales the spectrum of output channel ch by the frame's
// dynamic range control gains.
func (p *Processor) applyDRC(res *syntax.DecodeResult, spec []float32, ch int) {
	if !p.drc || res.DRC == nil || res.DRC.Excluded(ch) {
		return
	}
	spectrum.ApplyDRC(res.DRC, spec, p.cut, p.boost)
}

// sbrDecoder returns the element's SBR decoder, creating it when the
// frame signals SBR but no payload has reached this element yet.
func (p *Processor) sbrDecoder(slot *syntax.SBR, stereo bool) syntax.SBR {
	if *slot != nil || p.sbr == nil {
		return *slot
	}
	dec, err := p.sbr(stereo, p.cfg)
	if err != nil {
		p.log.Warn().Err(err).Bool("stereo", stereo).Msg("sbr decoder unavailable, skipping")
		return nil
	}
	*slot = dec
	return dec
}

func gainControl(ics *syntax.ICStream) error {
	if ics.GainControlDataPresent {
		return ErrGainControlNotSupported
	}
	return nil
}
