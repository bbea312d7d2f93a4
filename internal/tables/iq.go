package tables

import (
	"errors"
	"math"
)

// IQTableSize is the number of entries in IQTable. Quantized magnitudes
// must stay below it.
// Source: ~/dev/faad2/libfaad/specrec.h:41 (IQ_TABLE_SIZE)
const IQTableSize = 8192

// ErrIQOutOfRange is returned for a quantized value whose magnitude is
// not below IQTableSize.
var ErrIQOutOfRange = errors.New("tables: quantised value out of range")

// IQTable holds i^(4/3) for every representable quantized magnitude.
// FAAD2 ships it precomputed in iq_table.h; it is generated here.
var IQTable [IQTableSize]float64

func init() {
	for i := range IQTable {
		IQTable[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

// IQuant returns sign(q)*|q|^(4/3).
//
// Ported from: iquant() in ~/dev/faad2/libfaad/specrec.c:534-562
func IQuant(q int16) (float64, error) {
	if q < 0 {
		if -int(q) >= IQTableSize {
			return 0, ErrIQOutOfRange
		}
		return -IQTable[-int(q)], nil
	}
	if int(q) >= IQTableSize {
		return 0, ErrIQOutOfRange
	}
	return IQTable[q], nil
}
