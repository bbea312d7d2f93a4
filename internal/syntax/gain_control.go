package syntax

// GainControlInfo holds SSR gain control data. It is parsed so the stream
// position stays correct; the gain control tool itself is not supported.
//
// Ported from: gain_control_data() in ~/dev/faad2/libfaad/syntax.c
type GainControlInfo struct {
	MaxBand   uint8
	AdjustNum [4][8]uint8
	AlevCode  [4][8][8]uint8
	AlocCode  [4][8][8]uint8
}

// ParseGainControlData parses gain_control_data().
//
// Ported from: gain_control_data() in ~/dev/faad2/libfaad/syntax.c:2278-2364
func ParseGainControlData(r BitReader, ics *ICStream, gc *GainControlInfo) {
	gc.MaxBand = uint8(r.GetBits(2))

	// Window count and aloccode widths per window sequence.
	var locBits [8]uint
	windows := 1
	switch ics.WindowSequence {
	case OnlyLongSequence:
		locBits[0] = 5
	case LongStartSequence:
		windows = 2
		locBits[0], locBits[1] = 4, 2
	case EightShortSequence:
		windows = 8
		for w := range locBits {
			locBits[w] = 2
		}
	case LongStopSequence:
		windows = 2
		locBits[0], locBits[1] = 4, 5
	}

	for bd := 1; bd <= int(gc.MaxBand); bd++ {
		for wd := 0; wd < windows; wd++ {
			gc.AdjustNum[bd][wd] = uint8(r.GetBits(3))
			for ad := 0; ad < int(gc.AdjustNum[bd][wd]); ad++ {
				gc.AlevCode[bd][wd][ad] = uint8(r.GetBits(4))
				gc.AlocCode[bd][wd][ad] = uint8(r.GetBits(locBits[wd]))
			}
		}
	}
}
