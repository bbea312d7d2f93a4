package syntax

import "github.com/llehouerou/go-aacdec/internal/tables"

// WindowGroupingInfo sets the window count, window groups and band
// offsets of an ICS from its window sequence and the sample rate.
//
// Ported from: window_grouping_info() in ~/dev/faad2/libfaad/specrec.c:302-428
func WindowGroupingInfo(ics *ICStream, sfIndex uint8, frameLength uint16) error {
	if sfIndex >= 12 {
		return ErrInvalidSRIndex
	}

	switch ics.WindowSequence {
	case OnlyLongSequence, LongStartSequence, LongStopSequence:
		return windowGroupingLong(ics, sfIndex, frameLength)
	case EightShortSequence:
		return windowGroupingShort(ics, sfIndex, frameLength)
	default:
		return ErrInvalidWindowSequence
	}
}

func windowGroupingLong(ics *ICStream, sfIndex uint8, frameLength uint16) error {
	ics.NumWindows = 1
	ics.NumWindowGroups = 1
	ics.WindowGroupLength[0] = 1

	numSWB, err := tables.GetNumSWB(sfIndex, frameLength, false)
	if err != nil {
		return err
	}
	ics.NumSWB = numSWB
	if ics.MaxSFB > ics.NumSWB {
		return ErrMaxSFBTooLarge
	}

	offsets, err := tables.GetSWBOffset(sfIndex, frameLength, false)
	if err != nil {
		return err
	}
	for i := uint8(0); i < ics.NumSWB; i++ {
		ics.SectSFBOffset[0][i] = offsets[i]
		ics.SWBOffset[i] = offsets[i]
	}
	ics.SectSFBOffset[0][ics.NumSWB] = frameLength
	ics.SWBOffset[ics.NumSWB] = frameLength
	ics.SWBOffsetMax = frameLength
	return nil
}

func windowGroupingShort(ics *ICStream, sfIndex uint8, frameLength uint16) error {
	ics.NumWindows = 8
	ics.NumWindowGroups = 1
	ics.WindowGroupLength[0] = 1

	numSWB, err := tables.GetNumSWB(sfIndex, frameLength, true)
	if err != nil {
		return err
	}
	ics.NumSWB = numSWB
	if ics.MaxSFB > ics.NumSWB {
		return ErrMaxSFBTooLarge
	}

	offsets, err := tables.GetSWBOffset(sfIndex, frameLength, true)
	if err != nil {
		return err
	}
	shortLen := frameLength / 8
	for i := uint8(0); i < ics.NumSWB; i++ {
		ics.SWBOffset[i] = offsets[i]
	}
	ics.SWBOffset[ics.NumSWB] = shortLen
	ics.SWBOffsetMax = shortLen

	// A clear bit 6-i of scale_factor_grouping starts a new group at
	// window i+1.
	for i := uint8(0); i < 7; i++ {
		if ics.ScaleFactorGrouping&(1<<(6-i)) == 0 {
			ics.NumWindowGroups++
			ics.WindowGroupLength[ics.NumWindowGroups-1] = 1
		} else {
			ics.WindowGroupLength[ics.NumWindowGroups-1]++
		}
	}

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		offset := uint16(0)
		for i := uint8(0); i < ics.NumSWB; i++ {
			width := ics.SWBOffset[i+1] - ics.SWBOffset[i]
			ics.SectSFBOffset[g][i] = offset
			offset += width * uint16(ics.WindowGroupLength[g])
		}
		ics.SectSFBOffset[g][ics.NumSWB] = offset
	}
	return nil
}
