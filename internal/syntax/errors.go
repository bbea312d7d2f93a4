package syntax

import (
	"errors"
	"fmt"

	"github.com/llehouerou/go-aacdec/internal/config"
)

// Window grouping errors.
var (
	ErrInvalidSRIndex        = errors.New("syntax: invalid sample rate index")
	ErrInvalidWindowSequence = errors.New("syntax: invalid window sequence")
	ErrMaxSFBTooLarge        = errors.New("syntax: max_sfb exceeds num_swb")
)

// ICS errors.
var (
	ErrICSReservedBit = errors.New("syntax: ics_reserved_bit must be 0")
	ErrLTPLagTooLarge = errors.New("syntax: LTP lag exceeds maximum")
)

// Section and scalefactor errors.
var (
	ErrBitstreamRead    = errors.New("syntax: bitstream read error")
	ErrSectionLimit     = errors.New("syntax: section limit exceeded")
	ErrReservedCodebook = errors.New("syntax: reserved codebook 12 used")
	ErrSectionLength    = errors.New("syntax: section length exceeds limit")
	ErrSectionCoverage  = errors.New("syntax: sections do not cover all SFBs")
	ErrScaleFactorRange = errors.New("syntax: scale factor out of range [0, 255]")
)

// Pulse data errors.
var (
	ErrPulseStartSFB     = errors.New("syntax: pulse_start_sfb exceeds num_swb")
	ErrPulseInShortBlock = errors.New("syntax: pulse coding not allowed in short blocks")
	ErrPulsePosition     = errors.New("syntax: pulse position exceeds frame length")
)

// Element errors.
var (
	// ErrIntensityStereoInSCE: intensity stereo is only valid in a CPE.
	// FAAD2 error code: 32
	ErrIntensityStereoInSCE = errors.New("syntax: intensity stereo not allowed in single channel element")

	// ErrIntensityStereoInCCE: FAAD2 error code: 32
	ErrIntensityStereoInCCE = errors.New("syntax: intensity stereo not allowed in coupling channel element")

	// ErrMSMaskReserved: ms_mask_present value 3. FAAD2 error code: 32
	ErrMSMaskReserved = errors.New("syntax: ms_mask_present value 3 is reserved")

	// ErrBitstreamError: the reader ran past the end of the frame.
	// FAAD2 error code: 32
	ErrBitstreamError = errors.New("syntax: bitstream error")

	// ErrPCEChannels: a program config element declares more than
	// MaxChannels channels. FAAD2 error code: 22
	ErrPCEChannels = errors.New("syntax: program config element declares too many channels")

	// ErrCodebooksMissing is returned when an element carries scalefactor
	// bands and no Huffman codebooks were configured.
	ErrCodebooksMissing = errors.New("syntax: no Huffman codebooks configured")
)

// ErrTooManyElements is matched by every TooManyElementsError.
var ErrTooManyElements = errors.New("syntax: too many elements")

// TooManyElementsError reports a frame with more elements of one kind than
// the store has slots for.
type TooManyElementsError struct {
	Kind     ElementID
	Capacity int
}

func (e *TooManyElementsError) Error() string {
	return fmt.Sprintf("syntax: too many %s elements (capacity %d)", e.Kind, e.Capacity)
}

// Is makes errors.Is(err, ErrTooManyElements) hold.
func (e *TooManyElementsError) Is(target error) bool {
	return target == ErrTooManyElements
}

// ErrUnsupportedChannelConfiguration is matched by every
// UnsupportedChannelConfigurationError.
var ErrUnsupportedChannelConfiguration = errors.New("syntax: unsupported channel configuration")

// UnsupportedChannelConfigurationError reports an error resilient frame
// whose channel configuration has no fixed element sequence.
type UnsupportedChannelConfigurationError struct {
	Config config.ChannelConfiguration
}

func (e *UnsupportedChannelConfigurationError) Error() string {
	return fmt.Sprintf("syntax: unsupported channel configuration %d", e.Config)
}

// Is makes errors.Is(err, ErrUnsupportedChannelConfiguration) hold.
func (e *UnsupportedChannelConfigurationError) Is(target error) bool {
	return target == ErrUnsupportedChannelConfiguration
}
