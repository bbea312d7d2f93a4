package aac

// ObjectType is an MPEG-4 audio object type.
// Source: ~/dev/faad2/include/neaacdec.h:74-83
type ObjectType uint8

// Object types.
const (
	ObjectTypeMain    ObjectType = 1
	ObjectTypeLC      ObjectType = 2 // Low Complexity
	ObjectTypeSSR     ObjectType = 3 // Scalable Sample Rate, not decodable
	ObjectTypeLTP     ObjectType = 4 // Long Term Prediction
	ObjectTypeHEAAC   ObjectType = 5 // LC with SBR
	ObjectTypeERLC    ObjectType = 17
	ObjectTypeERLTP   ObjectType = 19
	ObjectTypeLD      ObjectType = 23
	ObjectTypeDRMERLC ObjectType = 27
)

// HeaderType is the stream framing detected by Init.
// Source: ~/dev/faad2/include/neaacdec.h:85-89
type HeaderType uint8

// Header types.
const (
	HeaderTypeRAW  HeaderType = 0
	HeaderTypeADIF HeaderType = 1
	HeaderTypeADTS HeaderType = 2
	HeaderTypeLATM HeaderType = 3
)

// OutputFormat is the PCM sample format.
// Source: ~/dev/faad2/include/neaacdec.h:97-103
type OutputFormat uint8

// Output formats. 24-bit samples are stored in 32-bit containers.
const (
	OutputFormat16Bit OutputFormat = 1
	OutputFormat24Bit OutputFormat = 2
	OutputFormat32Bit OutputFormat = 3
	OutputFormatFloat OutputFormat = 4
)

// ChannelPosition is the speaker position of an output channel.
// Source: ~/dev/faad2/include/neaacdec.h:113-123
type ChannelPosition uint8

// Channel positions.
const (
	ChannelUnknown     ChannelPosition = 0
	ChannelFrontCenter ChannelPosition = 1
	ChannelFrontLeft   ChannelPosition = 2
	ChannelFrontRight  ChannelPosition = 3
	ChannelSideLeft    ChannelPosition = 4
	ChannelSideRight   ChannelPosition = 5
	ChannelBackLeft    ChannelPosition = 6
	ChannelBackRight   ChannelPosition = 7
	ChannelBackCenter  ChannelPosition = 8
	ChannelLFE         ChannelPosition = 9
)

// SBRSignalling describes how SBR affected the output rate.
// Source: ~/dev/faad2/include/neaacdec.h:91-95
type SBRSignalling uint8

// SBR signalling values.
const (
	SBRNone          SBRSignalling = 0
	SBRUpsampled     SBRSignalling = 1
	SBRDownsampled   SBRSignalling = 2
	SBRNoneUpsampled SBRSignalling = 3
)

// MinStreamSize is the number of input bytes per channel a caller should
// have buffered before calling Decode.
// Source: ~/dev/faad2/include/neaacdec.h:135
const MinStreamSize = 768 // 6144 bits/channel

// Config holds the decoder settings applied at Init.
// Source: ~/dev/faad2/include/neaacdec.h:163-171
type Config struct {
	DefObjectType    ObjectType // used for raw streams
	DefSampleRate    uint32     // used for raw streams
	OutputFormat     OutputFormat
	DownMatrix       bool // fold 5.1 to stereo
	UseOldADTSFormat bool // ADTS headers with the emphasis field
}

// FrameInfo describes one decoded frame.
// Source: ~/dev/faad2/include/neaacdec.h:173-199
type FrameInfo struct {
	BytesConsumed uint32
	Samples       uint32 // samples over all channels
	Channels      uint8
	Error         Error
	SampleRate    uint32

	SBR        SBRSignalling
	ObjectType ObjectType
	HeaderType HeaderType

	NumFrontChannels uint8
	NumSideChannels  uint8
	NumBackChannels  uint8
	NumLFEChannels   uint8
	ChannelPosition  [64]ChannelPosition

	PS uint8 // 1 when parametric stereo produced the second channel
}

// InitResult is returned by Init and Init2.
type InitResult struct {
	SampleRate uint32
	Channels   uint8
	BytesRead  uint32 // always 0; ADTS headers are parsed again by Decode
}
