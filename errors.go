package aac

import (
	"errors"

	"github.com/llehouerou/go-aacdec/internal/filterbank"
	"github.com/llehouerou/go-aacdec/internal/output"
	"github.com/llehouerou/go-aacdec/internal/reconstruct"
	"github.com/llehouerou/go-aacdec/internal/spectrum"
	"github.com/llehouerou/go-aacdec/internal/syntax"
	"github.com/llehouerou/go-aacdec/internal/tables"
)

// Error is a FAAD2 decoder error code. Decode reports the code matching
// a failure in FrameInfo.Error.
// Ported from: ~/dev/faad2/libfaad/error.c, error.h
type Error int

// Error codes from FAAD2.
// Source: ~/dev/faad2/libfaad/error.c:34-69
const (
	ErrNone                      Error = 0
	ErrGainControlNotImplemented Error = 1
	ErrPulseInShortBlock         Error = 2
	ErrInvalidHuffmanCodebook    Error = 3
	ErrScalefactorOutOfRange     Error = 4
	ErrADTSSyncwordNotFound      Error = 5
	ErrChannelCouplingNotImpl    Error = 6
	ErrChannelConfigNotAllowed   Error = 7
	ErrBitErrorScalefactor       Error = 8
	ErrHuffmanScalefactor        Error = 9
	ErrHuffmanCodeword           Error = 10
	ErrNonExistentCodebook       Error = 11
	ErrInvalidNumChannels        Error = 12
	ErrMaxBitstreamElements      Error = 13
	ErrInputBufferTooSmall       Error = 14
	ErrArrayIndexOutOfRange      Error = 15
	ErrMaxScalefactorBands       Error = 16
	ErrQuantisedValueOutOfRange  Error = 17
	ErrLTPLagOutOfRange          Error = 18
	ErrInvalidSBRParameter       Error = 19
	ErrSBRNotInitialised         Error = 20
	ErrUnexpectedChannelChange   Error = 21
	ErrProgramConfigElement      Error = 22
	ErrSBRFirstFrame             Error = 23
	ErrUnexpectedFillElement     Error = 24
	ErrSBRDataMissing            Error = 25
	ErrLTPNotAvailable           Error = 26
	ErrOutputBufferTooSmall      Error = 27
	ErrDRMCRC                    Error = 28
	ErrPNSNotAllowedInDRM        Error = 29
	ErrNoExtPayloadInDRM         Error = 30
	ErrPCENotFirst               Error = 31
	ErrBitstreamValueNotAllowed  Error = 32
	ErrMAINPredictionNotInit     Error = 33
)

// errMessages contains error messages matching FAAD2 exactly.
// Source: ~/dev/faad2/libfaad/error.c:34-69
var errMessages = [34]string{
	"No error",
	"Gain control not yet implemented",
	"Pulse coding not allowed in short blocks",
	"Invalid huffman codebook",
	"Scalefactor out of range",
	"Unable to find ADTS syncword",
	"Channel coupling not yet implemented",
	"Channel configuration not allowed in error resilient frame",
	"Bit error in error resilient scalefactor decoding",
	"Error decoding huffman scalefactor (bitstream error)",
	"Error decoding huffman codeword (bitstream error)",
	"Non existent huffman codebook number found",
	"Invalid number of channels",
	"Maximum number of bitstream elements exceeded",
	"Input data buffer too small",
	"Array index out of range",
	"Maximum number of scalefactor bands exceeded",
	"Quantised value out of range",
	"LTP lag out of range",
	"Invalid SBR parameter decoded",
	"SBR called without being initialised",
	"Unexpected channel configuration change",
	"Error in program_config_element",
	"First SBR frame is not the same as first AAC frame",
	"Unexpected fill element with SBR data",
	"Not all elements were provided with SBR data",
	"LTP decoding not available",
	"Output data buffer too small",
	"CRC error in DRM data",
	"PNS not allowed in DRM data stream",
	"No standard extension payload allowed in DRM",
	"PCE shall be the first element in a frame",
	"Bitstream value not allowed by specification",
	"MAIN prediction not initialised",
}

// Error implements the error interface.
func (e Error) Error() string {
	return GetErrorMessage(e)
}

// GetErrorMessage returns the FAAD2 message for code.
//
// Ported from: NeAACDecGetErrorMessage() in ~/dev/faad2/libfaad/decoder.c:67-73
func GetErrorMessage(code Error) string {
	if code >= 0 && int(code) < len(errMessages) {
		return errMessages[code]
	}
	return "unknown error"
}

// API errors.
var (
	ErrNilDecoder            = errors.New("aac: nil decoder")
	ErrNilBuffer             = errors.New("aac: nil buffer")
	ErrBufferTooSmall        = errors.New("aac: buffer too small")
	ErrNotInitialized        = errors.New("aac: decoder not initialized")
	ErrADIFNotSupported      = errors.New("aac: ADIF streams are not supported")
	ErrUnsupportedObjectType = errors.New("aac: unsupported object type")
	ErrInvalidSampleRate     = errors.New("aac: invalid sample rate")
)

// Errors of the reconstruction pipeline callers may want to match.
var (
	ErrTooManyElements                 = syntax.ErrTooManyElements
	ErrUnsupportedChannelConfiguration = syntax.ErrUnsupportedChannelConfiguration
	ErrCodebooksMissing                = syntax.ErrCodebooksMissing
	ErrGainControlNotSupported         = reconstruct.ErrGainControlNotSupported
)

// errorCodes maps failures to the FAAD2 code reported for them. The
// first match wins.
var errorCodes = []struct {
	err  error
	code Error
}{
	{syntax.ErrTooManyElements, ErrMaxBitstreamElements},
	{syntax.ErrUnsupportedChannelConfiguration, ErrChannelConfigNotAllowed},
	{syntax.ErrADTSSyncwordNotFound, ErrADTSSyncwordNotFound},
	{syntax.ErrPulseInShortBlock, ErrPulseInShortBlock},
	{syntax.ErrReservedCodebook, ErrInvalidHuffmanCodebook},
	{syntax.ErrScaleFactorRange, ErrScalefactorOutOfRange},
	{syntax.ErrMaxSFBTooLarge, ErrMaxScalefactorBands},
	{syntax.ErrLTPLagTooLarge, ErrLTPLagOutOfRange},
	{syntax.ErrPCEChannels, ErrProgramConfigElement},
	{syntax.ErrPulsePosition, ErrArrayIndexOutOfRange},
	{tables.ErrIQOutOfRange, ErrQuantisedValueOutOfRange},
	{spectrum.ErrShortSpectrum, ErrArrayIndexOutOfRange},
	{reconstruct.ErrGainControlNotSupported, ErrGainControlNotImplemented},
	{reconstruct.ErrCouplingGainIndex, ErrArrayIndexOutOfRange},
	{reconstruct.ErrChannelOverflow, ErrInvalidNumChannels},
	{reconstruct.ErrNoChannels, ErrInvalidNumChannels},
	{filterbank.ErrFrameLength, ErrBitstreamValueNotAllowed},
	{output.ErrNoBuffers, ErrInvalidNumChannels},
	{ErrBufferTooSmall, ErrInputBufferTooSmall},
}

// errorCode returns the FAAD2 code for err. Parse failures without a
// dedicated code report a disallowed bitstream value.
func errorCode(err error) Error {
	if err == nil {
		return ErrNone
	}
	var code Error
	if errors.As(err, &code) {
		return code
	}
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return ErrBitstreamValueNotAllowed
}
