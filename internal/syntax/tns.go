package syntax

// TNSInfo contains Temporal Noise Shaping filter data, up to 4 filters
// per window.
//
// Ported from: tns_info in ~/dev/faad2/libfaad/structs.h:218-227
type TNSInfo struct {
	NFilt        [MaxWindowGroups]uint8
	CoefRes      [MaxWindowGroups]uint8
	Length       [MaxWindowGroups][4]uint8
	Order        [MaxWindowGroups][4]uint8
	Direction    [MaxWindowGroups][4]uint8 // 0=upward, 1=downward
	CoefCompress [MaxWindowGroups][4]uint8
	Coef         [MaxWindowGroups][4][32]uint8
}

// ParseTNSData parses tns_data().
//
// Long windows use 2/6/5 bits for n_filt/length/order, short windows
// 1/4/3. Coefficients take 3 or 4 bits (coef_res) minus coef_compress.
//
// Ported from: tns_data() in ~/dev/faad2/libfaad/syntax.c:2019-2089
func ParseTNSData(r BitReader, ics *ICStream, tns *TNSInfo) {
	nFiltBits, lengthBits, orderBits := uint(2), uint(6), uint(5)
	if ics.WindowSequence == EightShortSequence {
		nFiltBits, lengthBits, orderBits = 1, 4, 3
	}

	for w := uint8(0); w < ics.NumWindows; w++ {
		startCoefBits := uint(3)

		tns.NFilt[w] = uint8(r.GetBits(nFiltBits))
		if tns.NFilt[w] != 0 {
			tns.CoefRes[w] = r.Get1Bit()
			if tns.CoefRes[w] != 0 {
				startCoefBits = 4
			}
		}

		for filt := uint8(0); filt < tns.NFilt[w]; filt++ {
			tns.Length[w][filt] = uint8(r.GetBits(lengthBits))
			tns.Order[w][filt] = uint8(r.GetBits(orderBits))
			if tns.Order[w][filt] == 0 {
				continue
			}
			tns.Direction[w][filt] = r.Get1Bit()
			tns.CoefCompress[w][filt] = r.Get1Bit()

			coefBits := startCoefBits - uint(tns.CoefCompress[w][filt])
			for i := uint8(0); i < tns.Order[w][filt]; i++ {
				tns.Coef[w][filt][i] = uint8(r.GetBits(coefBits))
			}
		}
	}
}
