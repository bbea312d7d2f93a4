package output

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/llehouerou/go-aacdec/internal/config"
)

// ErrNoBuffers is returned when there is nothing to emit.
var ErrNoBuffers = errors.New("output: no channel buffers")

// Sink receives the interleaved samples of a frame.
type Sink interface {
	// Bytes returns the current sample buffer, reused when its length
	// matches the frame exactly.
	Bytes() []byte

	// BigEndian reports the byte order samples are written in.
	BigEndian() bool

	// SetData stores the frame and its format.
	SetData(b []byte, sampleRate, channels, bitDepth, bitsRead int)
}

// Emitter writes channel buffers to a Sink.
type Emitter struct {
	Format Format

	// DownMatrix folds 5.1 frames to stereo.
	DownMatrix bool
}

// Emit interleaves buffers into the sink's byte buffer. Every buffer
// holds one channel; their length is the frame length, already doubled
// when SBR is present. The sample rate reported is the core rate, or
// twice it with SBR.
//
// Ported from: output_to_PCM() in ~/dev/faad2/libfaad/output.c:452-530
func (e Emitter) Emit(buffers [][]float32, cfg *config.DecoderConfig, sbrPresent bool, bitsRead int, sink Sink) error {
	if len(buffers) == 0 {
		return ErrNoBuffers
	}
	format := e.Format
	if format < Format16Bit || format > FormatFloat {
		format = Format16Bit
	}

	channels := len(buffers)
	downmix := e.DownMatrix && channels == downmixChannels
	if downmix {
		channels = 2
	}
	frame := len(buffers[0])
	rate := cfg.SampleRate()
	if sbrPresent {
		rate *= 2
	}

	size := frame * channels * format.bytesPerSample()
	b := sink.Bytes()
	if len(b) != size {
		b = make([]byte, size)
	}
	var order binary.ByteOrder = binary.LittleEndian
	if sink.BigEndian() {
		order = binary.BigEndian
	}

	width := format.bytesPerSample()
	for i := 0; i < frame; i++ {
		for ch := 0; ch < channels; ch++ {
			v := sample(buffers, ch, i, downmix)
			off := (i*channels + ch) * width
			switch format {
			case Format24Bit:
				order.PutUint32(b[off:], uint32(clip24(v*256)))
			case Format32Bit:
				order.PutUint32(b[off:], uint32(clip32(v*65536)))
			case FormatFloat:
				order.PutUint32(b[off:], math.Float32bits(v*floatScale))
			default:
				order.PutUint16(b[off:], uint16(clip16(v)))
			}
		}
	}

	sink.SetData(b, rate, channels, format.BitDepth(), bitsRead)
	return nil
}
