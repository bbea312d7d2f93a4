package syntax

import (
	"testing"

	"github.com/llehouerou/go-aacdec/internal/bits"
)

func TestParseExtensionPayload(t *testing.T) {
	tests := []struct {
		name  string
		typ   ExtensionType
		count int
		write func(w *bits.Writer)
		want  int
		bits  int
	}{
		{
			name:  "fill data",
			typ:   ExtFillData,
			count: 3,
			write: func(w *bits.Writer) { w.PutBits(0, 4); w.PutBits(0xA5A5, 16) },
			want:  3,
			bits:  20,
		},
		{
			name:  "ancillary data",
			typ:   ExtDataElement,
			count: 4,
			write: func(w *bits.Writer) {
				w.PutBits(AncData, 4)
				w.PutBits(2, 8)
				w.PutBits(0xBEEF, 16)
			},
			want: 4,
			bits: 28,
		},
		{
			name:  "unknown data element version",
			typ:   ExtDataElement,
			count: 2,
			write: func(w *bits.Writer) { w.PutBits(1, 4); w.PutBits(0xFF, 8) },
			want:  2,
			bits:  12,
		},
		{
			name:  "extension fill",
			typ:   ExtFil,
			count: 2,
			write: func(w *bits.Writer) { w.PutBits(0, 4); w.PutBits(0, 8) },
			want:  2,
			bits:  12,
		},
	}
	for _, tt := range tests {
		var w bits.Writer
		tt.write(&w)
		w.ByteAlign()
		r := bits.NewReader(w.Bytes())

		var drc DRCInfo
		if got := parseExtensionPayload(r, tt.typ, tt.count, &drc); got != tt.want {
			t.Errorf("%s: got %d bytes, want %d", tt.name, got, tt.want)
		}
		if r.Position() != tt.bits {
			t.Errorf("%s: consumed %d bits, want %d", tt.name, r.Position(), tt.bits)
		}
	}
}

func TestParseDynamicRangeInfo_BandsAndExclusions(t *testing.T) {
	var w bits.Writer
	w.PutBit(true) // pce_tag_present
	w.PutBits(9, 4)
	w.PutBits(0, 4)
	w.PutBit(true) // excluded_chns_present
	w.PutBits(0x41, 7)
	w.PutBit(false) // no additional channels
	w.PutBit(true)  // drc_bands_present
	w.PutBits(1, 4) // band_incr
	w.PutBits(0, 4)
	w.PutBits(31, 8)
	w.PutBits(255, 8)
	w.PutBit(false) // prog_ref_level_present
	w.PutBit(false)
	w.PutBits(10, 7)
	w.PutBit(true)
	w.PutBits(20, 7)
	w.ByteAlign()

	drc := DRCInfo{ProgRefLevel: 70}
	n := parseDynamicRangeInfo(bits.NewReader(w.Bytes()), &drc)
	// 1 + pce tag + exclusions + bands header + 2 band tops + 2 gains
	if n != 8 {
		t.Errorf("bytes: got %d, want 8", n)
	}
	if drc.PCEInstanceTag != 9 || drc.NumBands != 2 || drc.BandTop[0] != 31 || drc.BandTop[1] != 255 {
		t.Errorf("header: %+v", drc)
	}
	if drc.ProgRefLevel != 70 {
		t.Errorf("ProgRefLevel: got %d, want 70 carried over", drc.ProgRefLevel)
	}
	if !drc.Excluded(0) || drc.Excluded(1) || !drc.Excluded(6) {
		t.Errorf("exclude mask: %v", drc.ExcludeMask[:7])
	}
	if drc.DynRngSgn[1] != 1 || drc.DynRngCtl[0] != 10 || drc.DynRngCtl[1] != 20 {
		t.Errorf("gains: sgn %v ctl %v", drc.DynRngSgn[:2], drc.DynRngCtl[:2])
	}
}
