package syntax

// Single is a single channel element or an LFE element.
type Single struct {
	Tag   uint8
	LFE   bool
	ICS   ICStream
	Spec  []int16 // quantized coefficients, bitstream order
	State ChannelState
	SBR   SBR // created by the first SBR payload addressed to this slot
}

// ParseSingle parses single_lfe_channel_element() into s. Intensity
// stereo is illegal in a single channel.
//
// Ported from: single_lfe_channel_element() in ~/dev/faad2/libfaad/syntax.c:652-696
func ParseSingle(r BitReader, s *Single, cfg *StreamConfig) error {
	s.Tag = uint8(r.GetBits(LenTag))
	s.ICS = ICStream{}
	s.Spec = specBuffer(s.Spec, cfg.FrameLength)

	sc := *cfg
	sc.CommonWindow = false
	if err := ParseIndividualChannelStream(r, &s.ICS, s.Spec, &sc); err != nil {
		return err
	}
	if s.ICS.IsUsed {
		return ErrIntensityStereoInSCE
	}
	return nil
}
