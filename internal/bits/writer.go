package bits

// Writer packs values MSB first into a growing byte slice. It is the
// inverse of Reader and is used to synthesize bitstreams.
type Writer struct {
	buf  []byte
	nbit int
}

// PutBits appends the low n bits (0-32) of v.
func (w *Writer) PutBits(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.PutBit(v>>uint(i)&1 != 0)
	}
}

// PutBit appends a single bit.
func (w *Writer) PutBit(b bool) {
	if w.nbit%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b {
		w.buf[len(w.buf)-1] |= 0x80 >> uint(w.nbit%8)
	}
	w.nbit++
}

// ByteAlign pads with zero bits up to the next byte boundary.
func (w *Writer) ByteAlign() {
	for w.nbit%8 != 0 {
		w.PutBit(false)
	}
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.nbit
}

// Bytes returns the packed buffer. A trailing partial byte is zero padded.
func (w *Writer) Bytes() []byte {
	return w.buf
}
