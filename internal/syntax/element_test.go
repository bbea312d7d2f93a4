package syntax

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/config"
)

// putBandedICS writes channel stream data after ics_info: two bands of
// codebook 1 and no tools.
func putBandedICS(w *bits.Writer) {
	w.PutBits(1, 4)
	w.PutBits(2, 5)
	w.PutBits(0, 3)
}

func putLongICSInfo(w *bits.Writer, maxSFB uint32, predictor bool) {
	w.PutBit(false)
	w.PutBits(0, 2)
	w.PutBit(false)
	w.PutBits(maxSFB, 6)
	w.PutBit(predictor)
}

func TestParsePair_CommonWindow(t *testing.T) {
	var w bits.Writer
	w.PutBits(4, 4) // tag
	w.PutBit(true)  // common_window
	putLongICSInfo(&w, 2, false)
	w.PutBits(1, 2) // ms_mask_present
	w.PutBit(true)
	w.PutBit(false)
	w.PutBits(100, 8)
	putBandedICS(&w)
	w.PutBits(100, 8)
	putBandedICS(&w)
	w.ByteAlign()

	var p Pair
	if err := ParsePair(bits.NewReader(w.Bytes()), &p, testStreamConfig(&fakeCodebooks{spectral: 2})); err != nil {
		t.Fatalf("ParsePair: %v", err)
	}
	if p.Tag != 4 || !p.CommonWindow {
		t.Errorf("tag %d common %v", p.Tag, p.CommonWindow)
	}
	if p.ICS1.MSMaskPresent != 1 || p.ICS1.MSUsed[0][0] != 1 || p.ICS1.MSUsed[0][1] != 0 {
		t.Errorf("ms mask: %d %v", p.ICS1.MSMaskPresent, p.ICS1.MSUsed[0][:2])
	}
	if p.ICS2.MaxSFB != 2 || p.ICS2.NumWindowGroups != 1 || p.ICS2.SFBCB[0][1] != 1 {
		t.Errorf("second channel did not inherit ics_info: %+v", p.ICS2.SFBCB[0][:2])
	}
	if p.Spec2[7] != 2 || p.Spec2[8] != 0 {
		t.Errorf("second channel spectrum: %v", p.Spec2[:9])
	}
	if ltp, _ := p.SecondLTP(); ltp != &p.ICS2.LTP {
		t.Error("SecondLTP should use the second channel's own LTP data")
	}
}

func TestParsePair_ReservedMSMask(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, 4)
	w.PutBit(true)
	putLongICSInfo(&w, 0, false)
	w.PutBits(3, 2)
	w.ByteAlign()

	var p Pair
	err := ParsePair(bits.NewReader(w.Bytes()), &p, testStreamConfig(nil))
	if !errors.Is(err, ErrMSMaskReserved) {
		t.Errorf("got %v, want ErrMSMaskReserved", err)
	}
}

func TestParsePair_SharedLTP(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, 4)
	w.PutBit(true)
	putLongICSInfo(&w, 1, true)
	// ltp_data for channel 1, then for channel 2
	w.PutBit(true)
	w.PutBits(600, 11)
	w.PutBits(3, 3)
	w.PutBit(true)
	w.PutBit(true)
	w.PutBits(700, 11)
	w.PutBits(5, 3)
	w.PutBit(false)
	w.PutBits(0, 2) // ms_mask_present
	for ch := 0; ch < 2; ch++ {
		w.PutBits(0, 8)
		w.PutBits(0, 4) // zero codebook
		w.PutBits(1, 5)
		w.PutBits(0, 3)
	}
	w.ByteAlign()

	cfg := testStreamConfig(nil)
	cfg.ObjectType = config.ObjectTypeLTP
	var p Pair
	if err := ParsePair(bits.NewReader(w.Bytes()), &p, cfg); err != nil {
		t.Fatalf("ParsePair: %v", err)
	}
	if p.ICS1.LTP.Lag != 600 || !p.ICS1.LTP.LongUsed[0] {
		t.Errorf("channel 1 LTP: %+v", p.ICS1.LTP)
	}
	ltp, state := p.SecondLTP()
	if ltp != &p.ICS1.LTP2 || state != &p.SharedLTP {
		t.Fatal("SecondLTP should use LTP2 and the shared history")
	}
	if ltp.Lag != 700 || ltp.Coef != 5 || ltp.LongUsed[0] {
		t.Errorf("channel 2 LTP: %+v", *ltp)
	}
}

func TestParseLTPData_LagTooLarge(t *testing.T) {
	var w bits.Writer
	w.PutBits(2047, 11)
	w.ByteAlign()
	ics := ICStream{MaxSFB: 1}
	var ltp LTPInfo
	// the limit is 2*frameLength, so 2047 is only out of range for 960
	err := ParseLTPData(bits.NewReader(w.Bytes()), &ics, &ltp, config.ObjectTypeLTP, 960)
	if !errors.Is(err, ErrLTPLagTooLarge) {
		t.Errorf("got %v, want ErrLTPLagTooLarge", err)
	}
}

func TestParseSingle_IntensityRejected(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, 4)
	w.PutBits(100, 8)
	putLongICSInfo(&w, 1, false)
	w.PutBits(uint32(IntensityHCB2), 4)
	w.PutBits(1, 5)
	w.PutBits(0, 3)
	w.ByteAlign()

	var s Single
	err := ParseSingle(bits.NewReader(w.Bytes()), &s, testStreamConfig(&fakeCodebooks{}))
	if !errors.Is(err, ErrIntensityStereoInSCE) {
		t.Errorf("got %v, want ErrIntensityStereoInSCE", err)
	}
}

func TestParseSingle_CodebooksMissing(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, 4)
	w.PutBits(100, 8)
	putLongICSInfo(&w, 2, false)
	putBandedICS(&w)
	w.ByteAlign()

	var s Single
	err := ParseSingle(bits.NewReader(w.Bytes()), &s, testStreamConfig(nil))
	if !errors.Is(err, ErrCodebooksMissing) {
		t.Errorf("got %v, want ErrCodebooksMissing", err)
	}
}
