// Package config holds the stream parameters shared by the syntax parser,
// the reconstruction chains and the output stage.
//
// It is a leaf package so every other package can depend on it without
// creating an import cycle through the root aac package.
package config

// ObjectType is an MPEG-4 audio object type (the decoder "profile").
// Source: ~/dev/faad2/include/neaacdec.h:74-83
type ObjectType uint8

// Audio object types.
const (
	ObjectTypeMain    ObjectType = 1
	ObjectTypeLC      ObjectType = 2
	ObjectTypeSSR     ObjectType = 3
	ObjectTypeLTP     ObjectType = 4
	ObjectTypeHEAAC   ObjectType = 5
	ObjectTypeERLC    ObjectType = 17
	ObjectTypeERLTP   ObjectType = 19
	ObjectTypeLD      ObjectType = 23
	ObjectTypeDRMERLC ObjectType = 27
)

// ERObjectStart is the first error resilient object type.
// Source: ~/dev/faad2/libfaad/syntax.h:71
const ERObjectStart ObjectType = 17

// IsErrorResilient reports whether frames of this object type use the
// fixed element sequence instead of tagged elements.
func (o ObjectType) IsErrorResilient() bool {
	return o >= ERObjectStart
}

// IsLTP reports whether the object type carries long term prediction.
//
// Ported from: is_ltp_ot() in ~/dev/faad2/libfaad/lt_predict.c:49-66
func (o ObjectType) IsLTP() bool {
	switch o {
	case ObjectTypeLTP, ObjectTypeERLTP, ObjectTypeLD:
		return true
	default:
		return false
	}
}

// CanDecode reports whether the decoder supports the object type.
// Source: ~/dev/faad2/libfaad/common.c:124-172
func (o ObjectType) CanDecode() bool {
	switch o {
	case ObjectTypeLC, ObjectTypeMain, ObjectTypeLTP,
		ObjectTypeERLC, ObjectTypeERLTP, ObjectTypeLD, ObjectTypeDRMERLC:
		return true
	default:
		return false
	}
}

// ChannelConfiguration is the MPEG-4 channelConfiguration index.
// Zero means the layout is described by a program config element.
type ChannelConfiguration uint8

// channelCounts maps configuration indices 1-7 to output channels.
var channelCounts = [8]int{0, 1, 2, 3, 4, 5, 6, 8}

// ChannelCount returns the number of output channels for the
// configuration, or 0 when it is not a standard one.
func (c ChannelConfiguration) ChannelCount() int {
	if int(c) < len(channelCounts) {
		return channelCounts[c]
	}
	return 0
}

// ChannelConfigurationFor maps a channel count back to a standard
// configuration index. ok is false when no standard layout has that many
// channels.
func ChannelConfigurationFor(channels int) (c ChannelConfiguration, ok bool) {
	for i := 1; i < len(channelCounts); i++ {
		if channelCounts[i] == channels {
			return ChannelConfiguration(i), true
		}
	}
	return 0, false
}

// DecoderConfig holds the parameters the element dispatcher and the
// processing chains read for every frame. A program config element
// overwrites Profile, SFIndex and ChannelConfiguration in place.
type DecoderConfig struct {
	Profile              ObjectType
	SFIndex              uint8
	ChannelConfiguration ChannelConfiguration
	FrameLength          uint16 // 1024 or 960
	SBRDownsampled       bool

	// PCEChannels is the channel count announced by the last program
	// config element when it does not match a standard configuration.
	PCEChannels int
}

// Default returns an LC, 44.1 kHz stereo configuration.
func Default() DecoderConfig {
	return DecoderConfig{
		Profile:              ObjectTypeLC,
		SFIndex:              4,
		ChannelConfiguration: 2,
		FrameLength:          1024,
	}
}

// ChannelCount returns the number of output channels for the current
// configuration, falling back to the program config count.
func (c *DecoderConfig) ChannelCount() int {
	if n := c.ChannelConfiguration.ChannelCount(); n > 0 {
		return n
	}
	return c.PCEChannels
}

// SampleRate returns the sample rate for the current index, 0 if invalid.
func (c *DecoderConfig) SampleRate() int {
	return int(SampleRate(c.SFIndex))
}

// sampleRates ports sample_rates[] from ~/dev/faad2/libfaad/common.c:61-65.
// Index 12 (7350 Hz) is defined in ISO/IEC 14496-3.
var sampleRates = [16]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
	7350, 0, 0, 0,
}

// SampleRate returns the sample rate in Hz for an index, 0 for reserved
// indices.
func SampleRate(sfIndex uint8) uint32 {
	if int(sfIndex) < len(sampleRates) {
		return sampleRates[sfIndex]
	}
	return 0
}

// SampleRateIndex returns the index closest to sampleRate using the
// geometric-mean thresholds of ISO/IEC 14496-3.
//
// Source: ~/dev/faad2/libfaad/common.c:41-56 (get_sr_index function)
func SampleRateIndex(sampleRate uint32) uint8 {
	thresholds := [...]uint32{92017, 75132, 55426, 46009, 37566, 27713, 23004, 18783, 13856, 11502, 9391}
	for i, t := range thresholds {
		if sampleRate >= t {
			return uint8(i)
		}
	}
	return 11
}
