package syntax

import "github.com/llehouerou/go-aacdec/internal/config"

// StreamConfig carries the decoder parameters an individual channel
// stream depends on.
type StreamConfig struct {
	SFIndex      uint8
	FrameLength  uint16
	ObjectType   config.ObjectType
	CommonWindow bool // ics_info was read by the enclosing pair
	Codebooks    Codebooks
}

// ParseICSInfo parses ics_info().
//
// Ported from: ics_info() in ~/dev/faad2/libfaad/syntax.c:829-952
func ParseICSInfo(r BitReader, ics *ICStream, cfg *StreamConfig) error {
	if r.Get1Bit() != 0 {
		return ErrICSReservedBit
	}

	ics.WindowSequence = WindowSequence(r.GetBits(2))
	ics.WindowShape = r.Get1Bit()

	if ics.WindowSequence == EightShortSequence {
		ics.MaxSFB = uint8(r.GetBits(4))
		ics.ScaleFactorGrouping = uint8(r.GetBits(7))
	} else {
		ics.MaxSFB = uint8(r.GetBits(6))
	}

	if err := WindowGroupingInfo(ics, cfg.SFIndex, cfg.FrameLength); err != nil {
		return err
	}

	if ics.WindowSequence == EightShortSequence {
		return nil
	}
	ics.PredictorDataPresent = r.Get1Bit() != 0
	if !ics.PredictorDataPresent {
		return nil
	}

	if cfg.ObjectType == config.ObjectTypeMain {
		parsePredictionData(r, ics, cfg.SFIndex)
		return nil
	}

	if !cfg.ObjectType.IsErrorResilient() {
		if err := parseLTP(r, ics, &ics.LTP, cfg); err != nil {
			return err
		}
		if cfg.CommonWindow {
			return parseLTP(r, ics, &ics.LTP2, cfg)
		}
		return nil
	}

	// Error resilient pairs with a common window carry their LTP data
	// after the M/S mask instead.
	if !cfg.CommonWindow {
		return parseLTP(r, ics, &ics.LTP, cfg)
	}
	return nil
}

// parseLTP reads ltp_data_present and, when set, ltp_data().
func parseLTP(r BitReader, ics *ICStream, ltp *LTPInfo, cfg *StreamConfig) error {
	ltp.DataPresent = r.Get1Bit() != 0
	if !ltp.DataPresent {
		return nil
	}
	return ParseLTPData(r, ics, ltp, cfg.ObjectType, cfg.FrameLength)
}
