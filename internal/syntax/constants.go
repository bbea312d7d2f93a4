// Package syntax implements AAC bitstream syntax parsing: the individual
// channel stream, every raw data block element, the element store that
// keeps per-slot state between frames, and the element dispatcher.
//
// Ported from: ~/dev/faad2/libfaad/syntax.c, syntax.h
package syntax

// ElementID represents a syntax element identifier.
// Source: ~/dev/faad2/libfaad/syntax.h:85-94
type ElementID uint8

// Syntax Element IDs.
const (
	IDSCE ElementID = 0x0 // Single Channel Element
	IDCPE ElementID = 0x1 // Channel Pair Element
	IDCCE ElementID = 0x2 // Coupling Channel Element
	IDLFE ElementID = 0x3 // LFE Channel Element
	IDDSE ElementID = 0x4 // Data Stream Element
	IDPCE ElementID = 0x5 // Program Config Element
	IDFIL ElementID = 0x6 // Fill Element
	IDEND ElementID = 0x7 // Terminating Element
)

var elementNames = [...]string{"SCE", "CPE", "CCE", "LFE", "DSE", "PCE", "FIL", "END"}

func (id ElementID) String() string {
	if int(id) < len(elementNames) {
		return elementNames[id]
	}
	return "invalid"
}

// WindowSequence represents the window sequence type.
// Source: ~/dev/faad2/libfaad/syntax.h:96-99
type WindowSequence uint8

// Window Sequences.
const (
	OnlyLongSequence   WindowSequence = 0x0
	LongStartSequence  WindowSequence = 0x1
	EightShortSequence WindowSequence = 0x2
	LongStopSequence   WindowSequence = 0x3
)

// ExtensionType represents a fill element extension type.
// Source: ~/dev/faad2/libfaad/syntax.h:79-83
type ExtensionType uint8

// Extension Types.
const (
	ExtFil          ExtensionType = 0
	ExtFillData     ExtensionType = 1
	ExtDataElement  ExtensionType = 2
	ExtDynamicRange ExtensionType = 11
	ExtSBRData      ExtensionType = 13
	ExtSBRDataCRC   ExtensionType = 14
)

// AncData is the data_element_version of ancillary data.
// Source: ~/dev/faad2/libfaad/syntax.h:83
const AncData = 0

// Bit length constants for parsing.
// Source: ~/dev/faad2/libfaad/syntax.h:74-77
const (
	LenSEID = 3 // Syntax element identifier length in bits
	LenTag  = 4 // Element instance tag length in bits
	LenByte = 8 // Byte length in bits
)

// Huffman codebook numbers with special meaning.
// Source: ~/dev/faad2/libfaad/syntax.h:101-108
const (
	ZeroHCB       = 0
	FirstPairHCB  = 5
	EscHCB        = 11
	ReservedHCB   = 12
	NoiseHCB      = 13
	IntensityHCB2 = 14
	IntensityHCB  = 15
)
