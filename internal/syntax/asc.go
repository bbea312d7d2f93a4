package syntax

import (
	"errors"

	"github.com/llehouerou/go-aacdec/internal/config"
)

// AudioSpecificConfig errors.
var (
	ErrASCUnsupportedObjectType = errors.New("syntax: unsupported audio object type")
	ErrASCInvalidSampleRate     = errors.New("syntax: invalid sample rate")
	ErrASCInvalidChannelConfig  = errors.New("syntax: invalid channel configuration")
	ErrASCEPConfigNotSupported  = errors.New("syntax: epConfig != 0 not supported")
)

// syncExtensionType marks backward compatible SBR signalling after the
// GASpecificConfig.
const syncExtensionType = 0x2b7

// AudioSpecificConfig is the MPEG-4 decoder configuration record found in
// MP4 sample descriptions.
//
// Ported from: mp4AudioSpecificConfig in ~/dev/faad2/libfaad/mp4.h:36-76
type AudioSpecificConfig struct {
	ObjectType           config.ObjectType
	SFIndex              uint8
	SampleRate           uint32
	ChannelConfiguration config.ChannelConfiguration

	FrameLengthFlag    bool // 960 sample frames
	DependsOnCoreCoder bool
	CoreCoderDelay     uint16
	ExtensionFlag      bool

	SectionDataResilience     bool
	ScalefactorDataResilience bool
	SpectralDataResilience    bool

	SBRPresent          bool
	PSPresent           bool
	ExtensionSFIndex    uint8
	ExtensionSampleRate uint32
	DownSampledSBR      bool

	// PCE is set when ChannelConfiguration is 0.
	PCE *ProgramConfig
}

// FrameLength returns 960 or 1024.
func (a *AudioSpecificConfig) FrameLength() uint16 {
	if a.FrameLengthFlag {
		return 960
	}
	return 1024
}

// ParseAudioSpecificConfig parses an AudioSpecificConfig. bufferSize is
// the record length in bytes and bounds the search for backward
// compatible SBR signalling.
//
// Ported from: AudioSpecificConfigFromBitfile() in ~/dev/faad2/libfaad/mp4.c:127-297
func ParseAudioSpecificConfig(r BitReader, bufferSize int) (*AudioSpecificConfig, error) {
	start := r.Position()
	a := &AudioSpecificConfig{}

	a.ObjectType = readObjectType(r)
	a.SFIndex, a.SampleRate = readSampleRate(r)
	a.ChannelConfiguration = config.ChannelConfiguration(r.GetBits(4))

	if a.ObjectType == config.ObjectTypeHEAAC || a.ObjectType == 29 {
		a.SBRPresent = true
		a.PSPresent = a.ObjectType == 29
		a.ExtensionSFIndex, a.ExtensionSampleRate = readSampleRate(r)
		a.ObjectType = readObjectType(r)
	}

	if !a.ObjectType.CanDecode() {
		return nil, ErrASCUnsupportedObjectType
	}
	if a.SampleRate == 0 {
		return nil, ErrASCInvalidSampleRate
	}
	if a.ChannelConfiguration > 7 {
		return nil, ErrASCInvalidChannelConfig
	}

	if err := parseGASpecificConfig(r, a); err != nil {
		return nil, err
	}
	if a.ObjectType.IsErrorResilient() {
		if r.GetBits(2) != 0 {
			return nil, ErrASCEPConfigNotSupported
		}
	}

	// Backward compatible SBR signalling.
	if !a.SBRPresent && bufferSize*8-(r.Position()-start) >= 16 {
		if r.GetBits(11) == syncExtensionType {
			if readObjectType(r) == config.ObjectTypeHEAAC {
				a.SBRPresent = r.Get1Bit() != 0
				if a.SBRPresent {
					a.ExtensionSFIndex, a.ExtensionSampleRate = readSampleRate(r)
				}
			}
		}
	}

	if a.SBRPresent {
		a.DownSampledSBR = a.ExtensionSFIndex == a.SFIndex
	}
	if r.Error() {
		return nil, ErrBitstreamError
	}
	return a, nil
}

// parseGASpecificConfig parses GASpecificConfig().
//
// Ported from: GASpecificConfig() in ~/dev/faad2/libfaad/syntax.c:66-129
func parseGASpecificConfig(r BitReader, a *AudioSpecificConfig) error {
	a.FrameLengthFlag = r.Get1Bit() != 0
	a.DependsOnCoreCoder = r.Get1Bit() != 0
	if a.DependsOnCoreCoder {
		a.CoreCoderDelay = uint16(r.GetBits(14))
	}
	a.ExtensionFlag = r.Get1Bit() != 0

	if a.ChannelConfiguration == 0 {
		a.PCE = &ProgramConfig{}
		if err := ParseProgramConfig(r, a.PCE); err != nil {
			return err
		}
	}

	if a.ExtensionFlag {
		if a.ObjectType.IsErrorResilient() {
			a.SectionDataResilience = r.Get1Bit() != 0
			a.ScalefactorDataResilience = r.Get1Bit() != 0
			a.SpectralDataResilience = r.Get1Bit() != 0
		}
		r.Get1Bit() // extensionFlag3
	}
	return nil
}

func readObjectType(r BitReader) config.ObjectType {
	ot := r.GetBits(5)
	if ot == 31 {
		ot = 32 + r.GetBits(6)
	}
	return config.ObjectType(ot)
}

// readSampleRate reads a sampling frequency index and, for the escape
// value 15, the explicit 24-bit rate.
func readSampleRate(r BitReader) (uint8, uint32) {
	idx := uint8(r.GetBits(4))
	if idx == 0x0f {
		rate := r.GetBits(24)
		return config.SampleRateIndex(rate), rate
	}
	return idx, config.SampleRate(idx)
}
