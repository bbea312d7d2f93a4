package syntax

import "github.com/llehouerou/go-aacdec/internal/config"

// LTPInfo contains Long Term Prediction side info.
//
// Ported from: ltp_info in ~/dev/faad2/libfaad/structs.h:186-197
type LTPInfo struct {
	LastBand    uint8
	DataPresent bool
	Lag         uint16
	LagUpdate   bool
	Coef        uint8

	LongUsed [MaxSFB]bool

	ShortUsed       [8]bool
	ShortLagPresent [8]bool
	ShortLag        [8]uint8
}

// ParseLTPData parses ltp_data().
//
// Ported from: ltp_data() in ~/dev/faad2/libfaad/syntax.c:2093-2152
func ParseLTPData(r BitReader, ics *ICStream, ltp *LTPInfo, objectType config.ObjectType, frameLength uint16) error {
	if objectType == config.ObjectTypeLD {
		ltp.LagUpdate = r.Get1Bit() != 0
		if ltp.LagUpdate {
			ltp.Lag = uint16(r.GetBits(10))
		}
	} else {
		ltp.Lag = uint16(r.GetBits(11))
	}

	if ltp.Lag > frameLength<<1 {
		return ErrLTPLagTooLarge
	}
	ltp.Coef = uint8(r.GetBits(3))

	if ics.WindowSequence == EightShortSequence {
		for w := uint8(0); w < ics.NumWindows; w++ {
			ltp.ShortUsed[w] = r.Get1Bit() != 0
			if ltp.ShortUsed[w] {
				ltp.ShortLagPresent[w] = r.Get1Bit() != 0
				if ltp.ShortLagPresent[w] {
					ltp.ShortLag[w] = uint8(r.GetBits(4))
				}
			}
		}
		return nil
	}

	ltp.LastBand = min(ics.MaxSFB, MaxLTPSFB)
	for sfb := uint8(0); sfb < ltp.LastBand; sfb++ {
		ltp.LongUsed[sfb] = r.Get1Bit() != 0
	}
	return nil
}
