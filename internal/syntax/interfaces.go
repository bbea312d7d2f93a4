package syntax

import "github.com/llehouerou/go-aacdec/internal/config"

// BitReader is the bit access the element parsers need. It is satisfied
// by *bits.Reader.
type BitReader interface {
	GetBits(n uint) uint32
	Get1Bit() uint8
	GetBitBuffer(n uint) []byte
	ByteAlign() uint8
	Position() int
	Error() bool
}

// Codebooks decodes Huffman coded symbols.
type Codebooks interface {
	// ScaleFactor decodes one scalefactor codeword and returns its delta,
	// the codeword index minus 60.
	ScaleFactor(r BitReader) (int, error)

	// Spectral decodes one codeword of codebook cb (1-11) into out: four
	// values for codebooks below FirstPairHCB, two otherwise.
	Spectral(cb uint8, r BitReader, out []int16) error
}

// SBR is a spectral band replication decoder bound to one channel
// element.
type SBR interface {
	// Decode parses an SBR extension payload of the given bit length.
	Decode(payload []byte, bits int, crc bool) error

	// Process upsamples left (and right, which may be nil for a single
	// channel element) in place. Each buffer holds twice the core frame
	// length; the core samples occupy the first half on entry.
	Process(left, right []float32, downsampled bool) error

	// PSUsed reports whether the last payload carried parametric stereo.
	PSUsed() bool
}

// SBRFactory creates the SBR decoder for a channel element. stereo is
// true for channel pairs.
type SBRFactory func(stereo bool, cfg *config.DecoderConfig) (SBR, error)
