package syntax

import "bytes"

// ADIFMagic starts every ADIF stream.
var ADIFMagic = []byte("ADIF")

// IsADIF reports whether data starts with an ADIF header. ADIF streams
// are recognized but not decoded.
func IsADIF(data []byte) bool {
	return bytes.HasPrefix(data, ADIFMagic)
}
