package aac

import (
	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

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
	w.PutBits(uint32(syntax.IDSCE), syntax.LenSEID)
	w.PutBits(tag, 4)
	putEmptyICS(w)
}

func putPair(w *bits.Writer, tag uint32) {
	w.PutBits(uint32(syntax.IDCPE), syntax.LenSEID)
	w.PutBits(tag, 4)
	w.PutBit(false) // common_window
	putEmptyICS(w)
	putEmptyICS(w)
}

func putLFE(w *bits.Writer, tag uint32) {
	w.PutBits(uint32(syntax.IDLFE), syntax.LenSEID)
	w.PutBits(tag, 4)
	putEmptyICS(w)
}

// putCoupling writes an empty coupling element with one single target.
func putCoupling(w *bits.Writer, tag uint32) {
	w.PutBits(uint32(syntax.IDCCE), syntax.LenSEID)
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

func putEnd(w *bits.Writer) {
	w.PutBits(uint32(syntax.IDEND), syntax.LenSEID)
	w.ByteAlign()
}

// rawBlock returns a raw data block written by put and closed with END.
func rawBlock(put func(w *bits.Writer)) []byte {
	var w bits.Writer
	put(&w)
	putEnd(&w)
	return w.Bytes()
}

// adtsFrame prefixes a raw data block with an ADTS header without CRC.
// profile is the object type minus one.
func adtsFrame(profile, sfIndex, chcfg uint32, block []byte) []byte {
	var w bits.Writer
	w.PutBits(syntax.ADTSSyncword, 12)
	w.PutBits(0, 1) // MPEG-4
	w.PutBits(0, 2) // layer
	w.PutBit(true)  // protection_absent
	w.PutBits(profile, 2)
	w.PutBits(sfIndex, 4)
	w.PutBit(false)
	w.PutBits(chcfg, 3)
	w.PutBits(0, 4) // original, home, copyright bits
	w.PutBits(uint32(7+len(block)), 13)
	w.PutBits(0x7FF, 11)
	w.PutBits(0, 2)
	return append(w.Bytes(), block...)
}

// stereoFrame is an LC 44.1 kHz ADTS frame carrying one silent pair.
func stereoFrame() []byte {
	return adtsFrame(1, 4, 2, rawBlock(func(w *bits.Writer) { putPair(w, 0) }))
}

// surroundFrame is an LC 48 kHz ADTS frame in configuration 6.
func surroundFrame() []byte {
	return adtsFrame(1, 3, 6, rawBlock(func(w *bits.Writer) {
		putSingle(w, 0)
		putPair(w, 0)
		putPair(w, 1)
		putLFE(w, 0)
	}))
}
