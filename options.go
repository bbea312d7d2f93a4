package aac

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// BitReader is the bit access handed to Codebooks.
type BitReader = syntax.BitReader

// Codebooks decodes the Huffman coded scalefactors and spectral values.
// Frames whose channels carry scalefactor bands cannot be decoded
// without one.
type Codebooks = syntax.Codebooks

// SBR is a spectral band replication decoder for one channel element.
type SBR = syntax.SBR

// SBRParams describes the stream an SBR decoder is created for.
type SBRParams struct {
	SampleRate  int // core sample rate
	FrameLength int // core frame length
	Downsampled bool
}

// SBRFactory creates the SBR decoder of a channel element. stereo is
// true for channel pairs.
type SBRFactory func(stereo bool, p SBRParams) (SBR, error)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) { d.log = l }
}

// WithCodebooks sets the Huffman decoder.
func WithCodebooks(cb Codebooks) Option {
	return func(d *Decoder) { d.codebooks = cb }
}

// WithSBR enables SBR decoding through f. Without it SBR payloads are
// skipped and the core signal is output at the doubled rate.
func WithSBR(f SBRFactory) Option {
	return func(d *Decoder) { d.sbr = f }
}

// WithDRC applies transmitted dynamic range control with the given
// compression and boost factors, both in [0, 1].
func WithDRC(cut, boost float32) Option {
	return func(d *Decoder) {
		d.drc = true
		d.drcCut, d.drcBoost = cut, boost
	}
}

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(d *Decoder) { d.config = c }
}

// sbrFactory adapts f to the internal factory signature.
func sbrFactory(f SBRFactory) syntax.SBRFactory {
	if f == nil {
		return nil
	}
	return func(stereo bool, cfg *config.DecoderConfig) (syntax.SBR, error) {
		return f(stereo, SBRParams{
			SampleRate:  cfg.SampleRate(),
			FrameLength: int(cfg.FrameLength),
			Downsampled: cfg.SBRDownsampled,
		})
	}
}
