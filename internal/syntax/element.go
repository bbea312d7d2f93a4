package syntax

// Element is one decoded syntax element. It is implemented by *Single,
// *Pair, *Coupling, *DataStream, *Fill and *ProgramConfig only.
type Element interface {
	Kind() ElementID
	element()
}

// ChannelState is the history one channel carries from frame to frame.
// It lives in the element slot, so it follows the slot position.
type ChannelState struct {
	PrevWindowShape uint8
	Pred            []PredState // main profile, one predictor per bin
	LTP             []int16     // 4*frameLength reconstructed samples
}

// Reset drops all history.
func (s *ChannelState) Reset() {
	*s = ChannelState{}
}

func (*Single) element()        {}
func (*Pair) element()          {}
func (*Coupling) element()      {}
func (*DataStream) element()    {}
func (*Fill) element()          {}
func (*ProgramConfig) element() {}

// Kind returns IDLFE for LFE elements and IDSCE otherwise.
func (s *Single) Kind() ElementID {
	if s.LFE {
		return IDLFE
	}
	return IDSCE
}

func (*Pair) Kind() ElementID          { return IDCPE }
func (*Coupling) Kind() ElementID      { return IDCCE }
func (*DataStream) Kind() ElementID    { return IDDSE }
func (*Fill) Kind() ElementID          { return IDFIL }
func (*ProgramConfig) Kind() ElementID { return IDPCE }

// specBuffer returns buf resized to n values, reallocating only when the
// length changes.
func specBuffer(buf []int16, n uint16) []int16 {
	if len(buf) != int(n) {
		return make([]int16, n)
	}
	return buf
}
