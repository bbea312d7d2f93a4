package syntax

import "github.com/llehouerou/go-aacdec/internal/bits"

// fakeCodebooks returns queued scalefactor deltas and fills spectral
// codewords with a constant. It reads no bits.
type fakeCodebooks struct {
	deltas   []int
	spectral int16
}

func (f *fakeCodebooks) ScaleFactor(BitReader) (int, error) {
	if len(f.deltas) == 0 {
		return 0, nil
	}
	d := f.deltas[0]
	f.deltas = f.deltas[1:]
	return d, nil
}

func (f *fakeCodebooks) Spectral(_ uint8, _ BitReader, out []int16) error {
	for i := range out {
		out[i] = f.spectral
	}
	return nil
}

// putEmptyICS writes an individual channel stream with a long window and
// no scalefactor bands.
func putEmptyICS(w *bits.Writer) {
	w.PutBits(0, 8) // global_gain
	w.PutBits(0, 1) // ics_reserved_bit
	w.PutBits(0, 2) // ONLY_LONG_SEQUENCE
	w.PutBits(0, 1) // window_shape
	w.PutBits(0, 6) // max_sfb
	w.PutBits(0, 1) // predictor_data_present
	w.PutBits(0, 3) // pulse, tns, gain control
}

func putSingle(w *bits.Writer, tag uint32) {
	w.PutBits(tag, 4)
	putEmptyICS(w)
}

func putPair(w *bits.Writer, tag uint32) {
	w.PutBits(tag, 4)
	w.PutBit(false) // common_window
	putEmptyICS(w)
	putEmptyICS(w)
}

// putCoupling writes an empty coupling element with one single target.
func putCoupling(w *bits.Writer, tag uint32) {
	w.PutBits(tag, 4)
	w.PutBit(false) // ind_sw_cce_flag
	w.PutBits(0, 3) // num_coupled_elements
	w.PutBit(false) // cc_target_is_cpe
	w.PutBits(0, 4) // cc_target_tag_select
	w.PutBit(false) // cc_domain
	w.PutBit(false) // gain_element_sign
	w.PutBits(0, 2) // gain_element_scale
	putEmptyICS(w)
}

func putID(w *bits.Writer, id ElementID) {
	w.PutBits(uint32(id), LenSEID)
}
