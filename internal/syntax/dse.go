package syntax

// DataStream is a data stream element. Its payload is kept for the
// caller and never interpreted.
type DataStream struct {
	Tag  uint8
	Data []byte
}

// ParseDataStream parses data_stream_element() into d.
//
// Ported from: data_stream_element() in ~/dev/faad2/libfaad/syntax.c:1080-1107
func ParseDataStream(r BitReader, d *DataStream) {
	d.Tag = uint8(r.GetBits(LenTag))
	aligned := r.Get1Bit() != 0
	count := int(r.GetBits(8))
	if count == 255 {
		count += int(r.GetBits(8))
	}
	if aligned {
		r.ByteAlign()
	}

	d.Data = d.Data[:0]
	for i := 0; i < count; i++ {
		d.Data = append(d.Data, byte(r.GetBits(LenByte)))
	}
}
