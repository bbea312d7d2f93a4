package aac

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/filterbank"
	"github.com/llehouerou/go-aacdec/internal/output"
	"github.com/llehouerou/go-aacdec/internal/reconstruct"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// Decoder decodes one AAC stream. It is not safe for concurrent use.
//
// Ported from: NeAACDecStruct in ~/dev/faad2/libfaad/structs.h:332-439
type Decoder struct {
	config    Config
	log       zerolog.Logger
	codebooks Codebooks
	sbr       SBRFactory

	drc              bool
	drcCut, drcBoost float32

	cfg        config.DecoderConfig
	headerType HeaderType

	dispatcher *syntax.Dispatcher
	processor  *reconstruct.Processor
	fb         *filterbank.FilterBank
	emitter    output.Emitter

	frame         uint32
	postSeekReset bool
}

// NewDecoder creates a decoder. It must be initialized with Init or
// Init2 before decoding.
//
// Ported from: NeAACDecOpen() in ~/dev/faad2/libfaad/decoder.c:123-182
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		config: Config{
			DefObjectType: ObjectTypeMain,
			DefSampleRate: 44100,
			OutputFormat:  OutputFormat16Bit,
		},
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Config returns the current configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// SetConfiguration replaces the configuration. Output settings apply
// from the next frame, stream defaults from the next Init.
//
// Ported from: NeAACDecSetConfiguration() in ~/dev/faad2/libfaad/decoder.c:264-299
func (d *Decoder) SetConfiguration(cfg Config) {
	d.config = cfg
	d.emitter = newEmitter(cfg)
}

func newEmitter(cfg Config) output.Emitter {
	return output.Emitter{
		Format:     output.Format(cfg.OutputFormat),
		DownMatrix: cfg.DownMatrix,
	}
}

// SampleRate returns the core sample rate in Hz.
func (d *Decoder) SampleRate() uint32 {
	return config.SampleRate(d.cfg.SFIndex)
}

// Channels returns the channel configuration index (0-7). Zero means
// the layout comes from a program config element.
func (d *Decoder) Channels() uint8 {
	return uint8(d.cfg.ChannelConfiguration)
}

// FrameLength returns the core samples per channel and frame.
func (d *Decoder) FrameLength() uint16 {
	return d.cfg.FrameLength
}

// ObjectType returns the current object type.
func (d *Decoder) ObjectType() ObjectType {
	return ObjectType(d.cfg.Profile)
}

// FrameCount returns the number of frames decoded.
func (d *Decoder) FrameCount() uint32 {
	return d.frame
}

// Init initializes the decoder from the start of a stream. ADTS headers
// provide the stream parameters; ADIF is recognized and rejected; any
// other data is treated as raw blocks described by the Config defaults.
//
// Ported from: NeAACDecInit() in ~/dev/faad2/libfaad/decoder.c:303-426
func (d *Decoder) Init(data []byte) (InitResult, error) {
	if d == nil {
		return InitResult{}, ErrNilDecoder
	}
	if data == nil {
		return InitResult{}, ErrNilBuffer
	}
	if len(data) < 2 {
		return InitResult{}, ErrBufferTooSmall
	}
	if syntax.IsADIF(data) {
		d.headerType = HeaderTypeADIF
		return InitResult{}, ErrADIFNotSupported
	}

	cfg := config.DecoderConfig{FrameLength: 1024}
	res := InitResult{}

	var h syntax.ADTSHeader
	if err := syntax.ParseADTSHeader(bits.NewReader(data), &h, d.config.UseOldADTSFormat); err == nil {
		d.headerType = HeaderTypeADTS
		cfg.Profile = config.ObjectType(h.Profile + 1)
		cfg.SFIndex = h.SFIndex
		cfg.ChannelConfiguration = config.ChannelConfiguration(h.ChannelConfiguration)
		res.Channels = h.ChannelConfiguration
		if res.Channels > 6 {
			res.Channels = 2
		}
	} else {
		d.headerType = HeaderTypeRAW
		cfg.Profile = config.ObjectType(d.config.DefObjectType)
		if cfg.Profile == config.ObjectTypeHEAAC {
			cfg.Profile = config.ObjectTypeLC
		}
		cfg.SFIndex = config.SampleRateIndex(d.config.DefSampleRate)
		res.Channels = 1
	}

	res.SampleRate = config.SampleRate(cfg.SFIndex)
	if res.SampleRate == 0 {
		return InitResult{}, ErrInvalidSampleRate
	}
	if err := d.setup(cfg); err != nil {
		return InitResult{}, err
	}
	return res, nil
}

// Init2 initializes the decoder from an MPEG-4 AudioSpecificConfig, as
// stored in MP4 sample descriptions.
//
// Ported from: NeAACDecInit2() in ~/dev/faad2/libfaad/decoder.c:428-530
func (d *Decoder) Init2(asc []byte) (InitResult, error) {
	if d == nil {
		return InitResult{}, ErrNilDecoder
	}
	if asc == nil {
		return InitResult{}, ErrNilBuffer
	}
	if len(asc) < 2 {
		return InitResult{}, ErrBufferTooSmall
	}

	a, err := syntax.ParseAudioSpecificConfig(bits.NewReader(asc), len(asc))
	if err != nil {
		switch {
		case errors.Is(err, syntax.ErrASCUnsupportedObjectType):
			return InitResult{}, ErrUnsupportedObjectType
		case errors.Is(err, syntax.ErrASCInvalidSampleRate):
			return InitResult{}, ErrInvalidSampleRate
		}
		return InitResult{}, fmt.Errorf("audio specific config: %w", err)
	}

	d.headerType = HeaderTypeRAW
	cfg := config.DecoderConfig{
		Profile:              a.ObjectType,
		SFIndex:              a.SFIndex,
		ChannelConfiguration: a.ChannelConfiguration,
		FrameLength:          a.FrameLength(),
		SBRDownsampled:       a.DownSampledSBR,
	}
	if a.PCE != nil {
		cfg.PCEChannels = int(a.PCE.Channels)
	}
	if err := d.setup(cfg); err != nil {
		return InitResult{}, err
	}

	res := InitResult{SampleRate: a.SampleRate, Channels: uint8(cfg.ChannelCount())}
	if a.SBRPresent && !a.DownSampledSBR {
		res.SampleRate *= 2
	}
	if a.PSPresent && res.Channels == 1 {
		res.Channels = 2
	}
	return res, nil
}

// SimpleInit is Init returning only the sample rate and channel count.
func (d *Decoder) SimpleInit(data []byte) (sampleRate uint32, channels uint8, err error) {
	res, err := d.Init(data)
	if err != nil {
		return 0, 0, err
	}
	return res.SampleRate, res.Channels, nil
}

// SimpleInit2 is Init2 returning only the sample rate and channel count.
func (d *Decoder) SimpleInit2(asc []byte) (sampleRate uint32, channels uint8, err error) {
	res, err := d.Init2(asc)
	if err != nil {
		return 0, 0, err
	}
	return res.SampleRate, res.Channels, nil
}

// setup builds the decoding pipeline for cfg. Low delay streams use
// 512 and 480 sample frames whose band tables are not carried.
func (d *Decoder) setup(cfg config.DecoderConfig) error {
	if !cfg.Profile.CanDecode() || cfg.Profile == config.ObjectTypeLD {
		return ErrUnsupportedObjectType
	}
	fb, err := filterbank.New(cfg.FrameLength)
	if err != nil {
		return err
	}

	d.cfg = cfg
	d.fb = fb
	d.frame = 0
	d.postSeekReset = false
	d.emitter = newEmitter(d.config)

	sbr := sbrFactory(d.sbr)
	dopts := []syntax.Option{syntax.WithLogger(d.log)}
	popts := []reconstruct.Option{reconstruct.WithLogger(d.log)}
	if d.codebooks != nil {
		dopts = append(dopts, syntax.WithCodebooks(d.codebooks))
	}
	if sbr != nil {
		dopts = append(dopts, syntax.WithSBR(sbr))
		popts = append(popts, reconstruct.WithSBR(sbr))
	}
	if d.drc {
		popts = append(popts, reconstruct.WithDRC(d.drcCut, d.drcBoost))
	}
	d.dispatcher = syntax.NewDispatcher(&d.cfg, dopts...)
	d.processor = reconstruct.New(&d.cfg, fb, popts...)

	d.log.Debug().
		Uint8("object_type", uint8(cfg.Profile)).
		Int("sample_rate", cfg.SampleRate()).
		Uint8("channel_config", uint8(cfg.ChannelConfiguration)).
		Uint16("frame_length", cfg.FrameLength).
		Msg("decoder initialized")
	return nil
}

// PostSeekReset drops all inter-frame state before the next frame. The
// frame counter is set to frame unless it is -1.
//
// Ported from: NeAACDecPostSeekReset() in ~/dev/faad2/libfaad/decoder.c:586-596
func (d *Decoder) PostSeekReset(frame int64) {
	d.postSeekReset = true
	if frame != -1 {
		d.frame = uint32(frame)
	}
}

// Close releases the pipeline. The decoder must be initialized again
// before further use.
//
// Ported from: NeAACDecClose() in ~/dev/faad2/libfaad/decoder.c:532-582
func (d *Decoder) Close() {
	d.dispatcher = nil
	d.processor = nil
	d.fb = nil
}
