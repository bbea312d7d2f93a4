package syntax

// ParseIndividualChannelStream parses individual_channel_stream(): side
// info followed by the Huffman coded spectral data, which is written to
// specData (at least frameLength values).
//
// Ported from: individual_channel_stream() in ~/dev/faad2/libfaad/syntax.c:1655-1728
func ParseIndividualChannelStream(r BitReader, ics *ICStream, specData []int16, cfg *StreamConfig) error {
	if err := parseSideInfo(r, ics, cfg); err != nil {
		return err
	}

	if cfg.ObjectType.IsErrorResilient() && ics.TNSDataPresent {
		ParseTNSData(r, ics, &ics.TNS)
	}

	clear(specData)
	if err := ParseSpectralData(r, ics, specData, cfg.FrameLength, cfg.Codebooks); err != nil {
		return err
	}

	if ics.PulseDataPresent && ics.WindowSequence == EightShortSequence {
		return ErrPulseInShortBlock
	}
	return nil
}

// Ported from: side_info() in ~/dev/faad2/libfaad/syntax.c:1576-1652
func parseSideInfo(r BitReader, ics *ICStream, cfg *StreamConfig) error {
	ics.GlobalGain = uint8(r.GetBits(8))

	if !cfg.CommonWindow {
		if err := ParseICSInfo(r, ics, cfg); err != nil {
			return err
		}
	}

	if err := ParseSectionData(r, ics); err != nil {
		return err
	}
	if err := DecodeScaleFactors(r, ics, cfg.Codebooks); err != nil {
		return err
	}

	ics.PulseDataPresent = r.Get1Bit() != 0
	if ics.PulseDataPresent {
		if err := ParsePulseData(r, ics, &ics.Pul); err != nil {
			return err
		}
	}

	ics.TNSDataPresent = r.Get1Bit() != 0
	if ics.TNSDataPresent && !cfg.ObjectType.IsErrorResilient() {
		ParseTNSData(r, ics, &ics.TNS)
	}

	ics.GainControlDataPresent = r.Get1Bit() != 0
	if ics.GainControlDataPresent {
		ParseGainControlData(r, ics, &ics.Gain)
	}
	return nil
}
