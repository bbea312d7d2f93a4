// Package output converts reconstructed channel buffers to interleaved
// PCM.
package output

import "math"

// Format is the PCM sample format.
type Format uint8

// Sample formats.
// Source: ~/dev/faad2/include/neaacdec.h:97-103
const (
	Format16Bit Format = 1
	Format24Bit Format = 2
	Format32Bit Format = 3
	FormatFloat Format = 4
)

// BitDepth returns the bits per sample reported for the format.
func (f Format) BitDepth() int {
	switch f {
	case Format24Bit:
		return 24
	case Format32Bit, FormatFloat:
		return 32
	default:
		return 16
	}
}

// bytesPerSample is the container size. 24-bit samples are stored in 32
// bits, as FAAD2 does.
func (f Format) bytesPerSample() int {
	if f != Format24Bit && f != Format32Bit && f != FormatFloat {
		return 2
	}
	return 4
}

// floatScale normalizes the 16-bit range to [-1, 1].
//
// Source: FLOAT_SCALE in ~/dev/faad2/libfaad/output.c:39
const floatScale = float32(1.0 / 32768.0)

// clip16 rounds to nearest, ties to even, and saturates to int16.
//
// Ported from: ~/dev/faad2/libfaad/output.c:64-85
func clip16(sample float32) int16 {
	if sample >= 32767.0 {
		return 32767
	}
	if sample <= -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(float64(sample)))
}

// clip24 is clip16 for samples already scaled by 256.
//
// Ported from: ~/dev/faad2/libfaad/output.c:154-172
func clip24(sample float32) int32 {
	if sample >= 8388607.0 {
		return 8388607
	}
	if sample <= -8388608.0 {
		return -8388608
	}
	return int32(math.RoundToEven(float64(sample)))
}

// clip32 is clip16 for samples already scaled by 65536.
//
// Ported from: ~/dev/faad2/libfaad/output.c:224-243
func clip32(sample float32) int32 {
	if sample >= 2147483647.0 {
		return 2147483647
	}
	if sample <= -2147483648.0 {
		return -2147483648
	}
	return int32(math.RoundToEven(float64(sample)))
}
