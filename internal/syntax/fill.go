package syntax

// Fill is a fill element. DRC is set when it carried dynamic range info
// and SBR when its payload went to the preceding channel element's SBR
// decoder.
type Fill struct {
	DRC bool
	SBR bool
}

// fillCount reads the fill element's byte count.
//
// Ported from: fill_element() in ~/dev/faad2/libfaad/syntax.c:1110-1122
func fillCount(r BitReader) int {
	count := int(r.GetBits(4))
	if count == 15 {
		count += int(r.GetBits(8)) - 1
	}
	return count
}

// parseExtensionPayloads consumes count bytes of extension payloads. typ
// is the already read type of the first one.
func parseExtensionPayloads(r BitReader, f *Fill, typ ExtensionType, count int, drc *DRCInfo) {
	for count > 0 {
		n := parseExtensionPayload(r, typ, count, drc)
		if typ == ExtDynamicRange {
			f.DRC = true
		}
		count -= n
		if count > 0 {
			typ = ExtensionType(r.GetBits(4))
		}
	}
}

// parseExtensionPayload parses one extension_payload() after its type
// and returns the number of bytes it occupied, type nibble included.
//
// Ported from: extension_payload() in ~/dev/faad2/libfaad/syntax.c:2222-2303
func parseExtensionPayload(r BitReader, typ ExtensionType, count int, drc *DRCInfo) int {
	align := uint(4)
	switch typ {
	case ExtDynamicRange:
		return parseDynamicRangeInfo(r, drc)
	case ExtFillData:
		r.GetBits(4) // fill_nibble
		skipBytes(r, count-1)
		return count
	case ExtDataElement:
		if r.GetBits(4) == AncData {
			loops, length := 0, 0
			for {
				part := int(r.GetBits(8))
				length += part
				loops++
				if part != 255 {
					break
				}
			}
			skipBytes(r, length)
			return length + loops + 1
		}
		align = 0
	}
	r.GetBits(align)
	skipBytes(r, count-1)
	return count
}

func skipBytes(r BitReader, n int) {
	for i := 0; i < n; i++ {
		r.GetBits(LenByte)
	}
}

// skipBits discards n bits.
func skipBits(r BitReader, n int) {
	if n <= 0 {
		return
	}
	for ; n >= 32; n -= 32 {
		r.GetBits(32)
	}
	r.GetBits(uint(n))
}
