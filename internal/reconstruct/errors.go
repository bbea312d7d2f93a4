package reconstruct

import "errors"

var (
	// ErrGainControlNotSupported is returned for frames that carry SSR
	// gain control data.
	ErrGainControlNotSupported = errors.New("reconstruct: gain control not supported")

	// ErrCouplingGainIndex is returned when a coupling target refers to a
	// gain list the coupling element does not carry.
	ErrCouplingGainIndex = errors.New("reconstruct: coupling gain index out of range")

	// ErrChannelOverflow is returned when the frame carries more channels
	// than the configuration announces.
	ErrChannelOverflow = errors.New("reconstruct: element exceeds configured channel count")

	// ErrNoChannels is returned when neither the configuration nor the
	// frame determines a channel count.
	ErrNoChannels = errors.New("reconstruct: no output channels")
)
