package syntax

// ProgramConfig is a program config element. It describes the speaker
// layout of streams that do not use a standard channel configuration.
//
// Ported from: program_config in ~/dev/faad2/libfaad/structs.h:103-144
type ProgramConfig struct {
	Tag        uint8
	ObjectType uint8 // profile, object type minus one
	SFIndex    uint8

	NumFrontChannelElements uint8
	NumSideChannelElements  uint8
	NumBackChannelElements  uint8
	NumLFEChannelElements   uint8
	NumAssocDataElements    uint8
	NumValidCCElements      uint8

	MonoMixdownPresent         bool
	MonoMixdownElementNumber   uint8
	StereoMixdownPresent       bool
	StereoMixdownElementNumber uint8
	MatrixMixdownIdxPresent    bool
	MatrixMixdownIdx           uint8
	PseudoSurroundEnable       bool

	FrontElementIsCPE         [16]bool
	FrontElementTagSelect     [16]uint8
	SideElementIsCPE          [16]bool
	SideElementTagSelect      [16]uint8
	BackElementIsCPE          [16]bool
	BackElementTagSelect      [16]uint8
	LFEElementTagSelect       [16]uint8
	AssocDataElementTagSelect [16]uint8
	CCElementIsIndSW          [16]bool
	ValidCCElementTagSelect   [16]uint8

	NumFrontChannels uint8
	NumSideChannels  uint8
	NumBackChannels  uint8
	NumLFEChannels   uint8

	// Channels is the total output channel count of the layout.
	Channels uint8

	Comment []byte
}

// ParseProgramConfig parses program_config_element() into p.
//
// Ported from: program_config_element() in ~/dev/faad2/libfaad/syntax.c:170-320
func ParseProgramConfig(r BitReader, p *ProgramConfig) error {
	comment := p.Comment[:0]
	*p = ProgramConfig{Comment: comment}

	p.Tag = uint8(r.GetBits(4))
	p.ObjectType = uint8(r.GetBits(2))
	p.SFIndex = uint8(r.GetBits(4))
	p.NumFrontChannelElements = uint8(r.GetBits(4))
	p.NumSideChannelElements = uint8(r.GetBits(4))
	p.NumBackChannelElements = uint8(r.GetBits(4))
	p.NumLFEChannelElements = uint8(r.GetBits(2))
	p.NumAssocDataElements = uint8(r.GetBits(3))
	p.NumValidCCElements = uint8(r.GetBits(4))

	if p.MonoMixdownPresent = r.Get1Bit() != 0; p.MonoMixdownPresent {
		p.MonoMixdownElementNumber = uint8(r.GetBits(4))
	}
	if p.StereoMixdownPresent = r.Get1Bit() != 0; p.StereoMixdownPresent {
		p.StereoMixdownElementNumber = uint8(r.GetBits(4))
	}
	if p.MatrixMixdownIdxPresent = r.Get1Bit() != 0; p.MatrixMixdownIdxPresent {
		p.MatrixMixdownIdx = uint8(r.GetBits(2))
		p.PseudoSurroundEnable = r.Get1Bit() != 0
	}

	channels := 0
	readPositioned := func(n uint8, isCPE *[16]bool, tags *[16]uint8) uint8 {
		var count uint8
		for i := uint8(0); i < n; i++ {
			isCPE[i] = r.Get1Bit() != 0
			tags[i] = uint8(r.GetBits(4))
			if isCPE[i] {
				count += 2
			} else {
				count++
			}
		}
		channels += int(count)
		return count
	}
	p.NumFrontChannels = readPositioned(p.NumFrontChannelElements, &p.FrontElementIsCPE, &p.FrontElementTagSelect)
	p.NumSideChannels = readPositioned(p.NumSideChannelElements, &p.SideElementIsCPE, &p.SideElementTagSelect)
	p.NumBackChannels = readPositioned(p.NumBackChannelElements, &p.BackElementIsCPE, &p.BackElementTagSelect)

	for i := uint8(0); i < p.NumLFEChannelElements; i++ {
		p.LFEElementTagSelect[i] = uint8(r.GetBits(4))
		p.NumLFEChannels++
		channels++
	}
	for i := uint8(0); i < p.NumAssocDataElements; i++ {
		p.AssocDataElementTagSelect[i] = uint8(r.GetBits(4))
	}
	for i := uint8(0); i < p.NumValidCCElements; i++ {
		p.CCElementIsIndSW[i] = r.Get1Bit() != 0
		p.ValidCCElementTagSelect[i] = uint8(r.GetBits(4))
	}

	r.ByteAlign()

	n := int(r.GetBits(8))
	for i := 0; i < n; i++ {
		p.Comment = append(p.Comment, byte(r.GetBits(8)))
	}

	if channels > MaxChannels {
		return ErrPCEChannels
	}
	p.Channels = uint8(channels)
	return nil
}
