package syntax

// Limit constants for AAC decoding.
// Source: ~/dev/faad2/libfaad/structs.h:43-48
const (
	MaxChannels        = 64 // Maximum number of output channels
	MaxWindowGroups    = 8  // Maximum number of window groups
	MaxSFB             = 51 // Maximum number of scalefactor bands
	MaxLTPSFB          = 40 // Maximum LTP scalefactor bands (long)
	MaxCoupledElements = 8  // num_coupled_elements is 3 bits, plus one
)

// Element store capacities.
const (
	// MaxElements is the per-frame capacity for coupling, data stream and
	// fill elements.
	MaxElements = 16

	// MaxChannelElements is the number of positional slots shared by
	// single, LFE and pair elements.
	MaxChannelElements = MaxChannels
)
