package syntax

import "github.com/rs/zerolog"

// Store holds the element slots that persist across frames. Channel
// elements are keyed by their position in the frame, so predictor, LTP
// and SBR state follows the element decoded at the same position.
// Coupling, data stream and fill elements have slots of their own.
type Store struct {
	channels  [MaxChannelElements]Element
	couplings [MaxElements]Coupling
	streams   [MaxElements]DataStream
	fills     [MaxElements]Fill
	pce       ProgramConfig

	log zerolog.Logger
}

// single returns the single slot at position i, replacing the slot when
// it held a pair.
func (s *Store) single(i int) *Single {
	if e, ok := s.channels[i].(*Single); ok {
		return e
	}
	s.kindChanged(i, IDSCE)
	e := &Single{}
	s.channels[i] = e
	return e
}

// pair returns the pair slot at position i, replacing the slot when it
// held a single.
func (s *Store) pair(i int) *Pair {
	if e, ok := s.channels[i].(*Pair); ok {
		return e
	}
	s.kindChanged(i, IDCPE)
	e := &Pair{}
	s.channels[i] = e
	return e
}

func (s *Store) kindChanged(i int, id ElementID) {
	if s.channels[i] == nil {
		return
	}
	s.log.Warn().
		Int("slot", i).
		Stringer("was", s.channels[i].Kind()).
		Stringer("now", id).
		Msg("element kind changed, slot state reset")
}

// Channel returns the channel element at slot i, or nil.
func (s *Store) Channel(i int) Element {
	if i < 0 || i >= len(s.channels) {
		return nil
	}
	return s.channels[i]
}

// Reset drops all slot state.
func (s *Store) Reset() {
	log := s.log
	*s = Store{log: log}
}

// FrameCursor tracks the slots used by the frame being decoded. It is
// reset at the start of every frame.
type FrameCursor struct {
	Channels  int // next positional channel slot
	Couplings int
	Streams   int
	Fills     int

	Elements   []Element
	SBRPresent bool
	PSPresent  bool
	BitsRead   int

	// OutputChannels counts the channels carried by this frame's single
	// and pair elements.
	OutputChannels int
}

// Reset prepares the cursor for a new frame.
func (c *FrameCursor) Reset() {
	*c = FrameCursor{Elements: c.Elements[:0]}
}
