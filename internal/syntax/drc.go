package syntax

// DRCRefLevel is the reference level dyn_rng_ctl values are relative to,
// in quarter dB steps below full scale.
const DRCRefLevel = 20 * 4

// DRCInfo holds the dynamic range control data of one frame.
//
// Ported from: drc_info in ~/dev/faad2/libfaad/structs.h:85-101
type DRCInfo struct {
	Present             bool
	NumBands            uint8
	PCEInstanceTag      uint8
	ExcludedChnsPresent bool

	BandTop      [17]uint8 // top of each band, in units of 4 spectral lines
	ProgRefLevel uint8

	DynRngSgn [17]uint8
	DynRngCtl [17]uint8

	ExcludeMask            [MaxChannels]uint8
	AdditionalExcludedChns [MaxChannels]uint8
}

// Excluded reports whether DRC must not be applied to output channel ch.
func (d *DRCInfo) Excluded(ch int) bool {
	return d.ExcludedChnsPresent && ch < len(d.ExcludeMask) && d.ExcludeMask[ch] != 0
}

// parseDynamicRangeInfo parses dynamic_range_info() and returns the
// number of bytes it occupies. The program reference level carries over
// from earlier frames when it is not retransmitted.
//
// Ported from: dynamic_range_info() in ~/dev/faad2/libfaad/syntax.c:2305-2365
func parseDynamicRangeInfo(r BitReader, drc *DRCInfo) int {
	ref := drc.ProgRefLevel
	*drc = DRCInfo{ProgRefLevel: ref, NumBands: 1}
	n := 1

	if r.Get1Bit() != 0 {
		drc.PCEInstanceTag = uint8(r.GetBits(4))
		r.GetBits(4) // drc_tag_reserved_bits
		n++
	}

	drc.ExcludedChnsPresent = r.Get1Bit() != 0
	if drc.ExcludedChnsPresent {
		n += parseExcludedChannels(r, drc)
	}

	if r.Get1Bit() != 0 {
		bandIncr := uint8(r.GetBits(4))
		r.GetBits(4) // drc_bands_reserved_bits
		n++
		drc.NumBands += bandIncr
		for i := uint8(0); i < drc.NumBands; i++ {
			drc.BandTop[i] = uint8(r.GetBits(8))
			n++
		}
	} else {
		drc.BandTop[0] = 1024/4 - 1
	}

	if r.Get1Bit() != 0 {
		drc.ProgRefLevel = uint8(r.GetBits(7))
		r.Get1Bit() // prog_ref_level_reserved_bits
		n++
	}

	for i := uint8(0); i < drc.NumBands; i++ {
		drc.DynRngSgn[i] = r.Get1Bit()
		drc.DynRngCtl[i] = uint8(r.GetBits(7))
		n++
	}
	drc.Present = true
	return n
}

// parseExcludedChannels parses excluded_channels() and returns the number
// of bytes it occupies.
//
// Ported from: excluded_channels() in ~/dev/faad2/libfaad/syntax.c:2367-2394
func parseExcludedChannels(r BitReader, drc *DRCInfo) int {
	n := 0
	numExclChan := 7

	for i := 0; i < 7; i++ {
		drc.ExcludeMask[i] = r.Get1Bit()
	}
	n++

	for {
		drc.AdditionalExcludedChns[n-1] = r.Get1Bit()
		if drc.AdditionalExcludedChns[n-1] == 0 {
			break
		}
		if numExclChan >= MaxChannels-7 {
			return n
		}
		for i := numExclChan; i < numExclChan+7; i++ {
			drc.ExcludeMask[i] = r.Get1Bit()
		}
		n++
		numExclChan += 7
	}
	return n
}
