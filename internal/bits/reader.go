// Package bits implements MSB-first bit access over byte buffers.
package bits

// Reader reads bits from a byte buffer.
//
// Two 32-bit words are kept loaded: bufa holds the bits being read and
// bufb the next word, so reads of up to 32 bits never touch the buffer
// more than once.
//
// Ported from: bitfile struct in ~/dev/faad2/libfaad/bits.h:48-60
type Reader struct {
	buffer   []byte
	bufa     uint32
	bufb     uint32
	bitsLeft uint32 // unread bits in bufa (1-32)
	pos      int    // next byte to load into bufb
	err      bool   // read past the end of buffer
}

// NewReader creates a Reader over data. An empty buffer sets the error
// flag immediately.
//
// Ported from: faad_initbits() in ~/dev/faad2/libfaad/bits.c:55-99
func NewReader(data []byte) *Reader {
	r := &Reader{buffer: data}
	if len(data) == 0 {
		r.err = true
		return r
	}
	r.load(0)
	return r
}

// load positions the two-word window at byte offset.
func (r *Reader) load(offset int) {
	r.bufa = r.loadWord(offset)
	r.bufb = r.loadWord(offset + 4)
	r.pos = offset + 8
	r.bitsLeft = 32
}

// loadWord returns 4 bytes at offset as a big-endian word, zero padded
// past the end of the buffer.
//
// Ported from: getdword() in bits.h:96-100 and getdword_n() in bits.c:38-52
func (r *Reader) loadWord(offset int) uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w <<= 8
		if offset+i < len(r.buffer) {
			w |= uint32(r.buffer[offset+i])
		}
	}
	return w
}

// Error reports whether a read went past the end of the buffer.
func (r *Reader) Error() bool {
	return r.err
}

// BitsLeft returns the number of unread bits in the current word.
func (r *Reader) BitsLeft() uint32 {
	return r.bitsLeft
}

// Position returns the number of bits consumed since the start of the
// buffer.
//
// Ported from: faad_get_processed_bits() in ~/dev/faad2/libfaad/bits.c:101-104
func (r *Reader) Position() int {
	if len(r.buffer) == 0 {
		return 0
	}
	return r.pos*8 - 32 - int(r.bitsLeft)
}

// ShowBits returns the next n bits (0-32) without consuming them.
//
// Ported from: faad_showbits() in ~/dev/faad2/libfaad/bits.h:102-113
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	if n <= uint(r.bitsLeft) {
		return (r.bufa << (32 - r.bitsLeft)) >> (32 - n)
	}
	fromB := n - uint(r.bitsLeft)
	return ((r.bufa & ((1 << r.bitsLeft) - 1)) << fromB) | (r.bufb >> (32 - fromB))
}

// FlushBits discards n bits.
//
// Ported from: faad_flushbits() in ~/dev/faad2/libfaad/bits.h:115-127
// and faad_flushbits_ex() in ~/dev/faad2/libfaad/bits.c:123-144
func (r *Reader) FlushBits(n uint) {
	if r.err {
		return
	}
	if n < uint(r.bitsLeft) {
		r.bitsLeft -= uint32(n)
	} else {
		r.bufa = r.bufb
		r.bufb = r.loadWord(r.pos)
		r.pos += 4
		r.bitsLeft += 32 - uint32(n)
	}
	if r.Position() > len(r.buffer)*8 {
		r.err = true
	}
}

// GetBits reads n bits (0-32).
//
// Ported from: faad_getbits() in ~/dev/faad2/libfaad/bits.h:130-146
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	v := r.ShowBits(n)
	r.FlushBits(n)
	return v
}

// Get1Bit reads a single bit.
//
// Ported from: faad_get1bit() in ~/dev/faad2/libfaad/bits.h:148-167
func (r *Reader) Get1Bit() uint8 {
	if r.bitsLeft > 1 && !r.err {
		r.bitsLeft--
		if r.pos > len(r.buffer)+4 && r.Position() > len(r.buffer)*8 {
			r.err = true
		}
		return uint8((r.bufa >> r.bitsLeft) & 1)
	}
	return uint8(r.GetBits(1))
}

// ByteAlign skips to the next byte boundary and returns the number of
// bits skipped.
//
// Ported from: faad_byte_align() in ~/dev/faad2/libfaad/bits.c:106-121
func (r *Reader) ByteAlign() uint8 {
	rem := uint8(r.Position() % 8)
	if rem == 0 {
		return 0
	}
	r.FlushBits(uint(8 - rem))
	return 8 - rem
}

// GetBitBuffer reads n bits into a new byte slice, MSB first. A trailing
// partial byte is left aligned.
//
// Ported from: faad_getbitbuffer() in ~/dev/faad2/libfaad/bits.c:213-239
func (r *Reader) GetBitBuffer(n uint) []byte {
	out := make([]byte, (n+7)/8)
	i := 0
	for ; n >= 8; n -= 8 {
		out[i] = byte(r.GetBits(8))
		i++
	}
	if n > 0 {
		out[i] = byte(r.GetBits(n) << (8 - n))
	}
	return out
}

// ResetBits repositions the reader at absolute bit offset bit, clearing
// the error flag. Seeking past the end sets it again.
//
// Ported from: faad_resetbits() in ~/dev/faad2/libfaad/bits.c:164-200
func (r *Reader) ResetBits(bit int) {
	if bit > len(r.buffer)*8 || bit < 0 {
		r.err = true
		return
	}
	r.err = false
	word := (bit / 32) * 4
	r.load(word)
	r.bitsLeft = 32 - uint32(bit%32)
}
