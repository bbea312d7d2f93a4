package aac

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/go-aacdec/internal/reconstruct"
	"github.com/llehouerou/go-aacdec/internal/syntax"
	"github.com/llehouerou/go-aacdec/internal/tables"
)

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		code Error
		want string
	}{
		{ErrNone, "No error"},
		{ErrGainControlNotImplemented, "Gain control not yet implemented"},
		{ErrMaxBitstreamElements, "Maximum number of bitstream elements exceeded"},
		{ErrMAINPredictionNotInit, "MAIN prediction not initialised"},
		{Error(34), "unknown error"},
		{Error(-1), "unknown error"},
	}
	for _, tt := range tests {
		if got := GetErrorMessage(tt.code); got != tt.want {
			t.Errorf("GetErrorMessage(%d): got %q, want %q", tt.code, got, tt.want)
		}
		if got := tt.code.Error(); got != tt.want {
			t.Errorf("Error(%d): got %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Error
	}{
		{"nil", nil, ErrNone},
		{"code", ErrLTPNotAvailable, ErrLTPNotAvailable},
		{"wrapped code", fmt.Errorf("frame: %w", ErrDRMCRC), ErrDRMCRC},
		{"too many elements", &syntax.TooManyElementsError{Kind: syntax.IDCCE, Capacity: syntax.MaxElements}, ErrMaxBitstreamElements},
		{"syncword", syntax.ErrADTSSyncwordNotFound, ErrADTSSyncwordNotFound},
		{"pulse", fmt.Errorf("SCE 0: %w", syntax.ErrPulseInShortBlock), ErrPulseInShortBlock},
		{"quantized value", tables.ErrIQOutOfRange, ErrQuantisedValueOutOfRange},
		{"gain control", fmt.Errorf("CPE 2: %w", reconstruct.ErrGainControlNotSupported), ErrGainControlNotImplemented},
		{"channel overflow", reconstruct.ErrChannelOverflow, ErrInvalidNumChannels},
		{"other", errors.New("bitstream"), ErrBitstreamValueNotAllowed},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestErrorAliases(t *testing.T) {
	err := fmt.Errorf("SCE 0: %w", reconstruct.ErrGainControlNotSupported)
	if !errors.Is(err, ErrGainControlNotSupported) {
		t.Error("ErrGainControlNotSupported does not match the pipeline error")
	}
	if !errors.Is(&syntax.TooManyElementsError{Kind: syntax.IDSCE}, ErrTooManyElements) {
		t.Error("ErrTooManyElements does not match TooManyElementsError")
	}
}
