package syntax

// Pair is a channel pair element.
type Pair struct {
	Tag          uint8
	CommonWindow bool
	ICS1, ICS2   ICStream
	Spec1, Spec2 []int16

	State1, State2 ChannelState

	// SharedLTP is the LTP history the second channel predicts from when
	// the pair has a common window and ICS1.LTP2 is present. It follows
	// the second channel's output in every common window frame.
	SharedLTP []int16

	SBR SBR
}

// ParsePair parses channel_pair_element() into p.
//
// Ported from: channel_pair_element() in ~/dev/faad2/libfaad/syntax.c:698-826
func ParsePair(r BitReader, p *Pair, cfg *StreamConfig) error {
	p.Tag = uint8(r.GetBits(LenTag))
	p.ICS1 = ICStream{}
	p.ICS2 = ICStream{}
	p.Spec1 = specBuffer(p.Spec1, cfg.FrameLength)
	p.Spec2 = specBuffer(p.Spec2, cfg.FrameLength)

	sc := *cfg
	p.CommonWindow = r.Get1Bit() != 0
	sc.CommonWindow = p.CommonWindow
	er := cfg.ObjectType.IsErrorResilient()
	ics1 := &p.ICS1

	if p.CommonWindow {
		if err := ParseICSInfo(r, ics1, &sc); err != nil {
			return err
		}
		ics1.MSMaskPresent = uint8(r.GetBits(2))
		if ics1.MSMaskPresent == 3 {
			return ErrMSMaskReserved
		}
		if ics1.MSMaskPresent == 1 {
			for g := uint8(0); g < ics1.NumWindowGroups; g++ {
				for sfb := uint8(0); sfb < ics1.MaxSFB; sfb++ {
					ics1.MSUsed[g][sfb] = r.Get1Bit()
				}
			}
		}
		if er && ics1.PredictorDataPresent {
			if err := parseLTP(r, ics1, &ics1.LTP, &sc); err != nil {
				return err
			}
		}
		p.ICS2 = *ics1
	}

	if err := ParseIndividualChannelStream(r, ics1, p.Spec1, &sc); err != nil {
		return err
	}

	if p.CommonWindow && er && ics1.PredictorDataPresent {
		if err := parseLTP(r, ics1, &ics1.LTP2, &sc); err != nil {
			return err
		}
	}

	return ParseIndividualChannelStream(r, &p.ICS2, p.Spec2, &sc)
}

// SecondLTP returns the LTP side info and history channel 2 of the pair
// predicts from.
func (p *Pair) SecondLTP() (*LTPInfo, *[]int16) {
	if p.CommonWindow && p.ICS1.LTP2.DataPresent {
		return &p.ICS1.LTP2, &p.SharedLTP
	}
	return &p.ICS2.LTP, &p.State2.LTP
}

// SharedHistory returns the shared LTP history when the pair has a
// common window, or nil.
func (p *Pair) SharedHistory() *[]int16 {
	if p.CommonWindow {
		return &p.SharedLTP
	}
	return nil
}
