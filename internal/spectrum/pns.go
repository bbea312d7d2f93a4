package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// PNSState is the noise generator state. It persists for the lifetime
// of a decoder.
type PNSState struct {
	R1, R2 uint32
}

// NewPNSState returns the generator state FAAD2 starts from, equivalent
// to seeding with (1, 1) and running 1024 iterations.
//
// Source: ~/dev/faad2/libfaad/decoder.c:152-153
func NewPNSState() *PNSState {
	return &PNSState{R1: 0x2bb431ea, R2: 0x206155b7}
}

// PNSDecode fills the noise bands of a single channel.
//
// Ported from: pns_decode() in ~/dev/faad2/libfaad/pns.c:143-260
func (s *PNSState) PNSDecode(ics *syntax.ICStream, spec []float32, frameLength uint16) {
	s.decode(ics, nil, spec, nil, frameLength)
}

// PNSDecodePair fills the noise bands of both channels of a pair. When a
// band is noise in both channels and M/S is signalled for it, the right
// channel gets the same noise as the left.
func (s *PNSState) PNSDecodePair(icsL, icsR *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	s.decode(icsL, icsR, specL, specR, frameLength)
}

func (s *PNSState) decode(icsL, icsR *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	if !icsL.NoiseUsed && (icsR == nil || !icsR.NoiseUsed) {
		return
	}
	nshort := frameLength / 8
	group := uint16(0)

	for g := uint8(0); g < icsL.NumWindowGroups; g++ {
		for b := uint8(0); b < icsL.WindowGroupLength[g]; b++ {
			base := group * nshort
			for sfb := uint8(0); sfb < icsL.MaxSFB; sfb++ {
				var dep PNSState
				leftNoise := icsL.IsNoise(g, sfb)
				if leftNoise {
					disablePrediction(icsL, sfb)
					begin, end := bandRange(icsL, base, sfb)
					dep = *s
					s.randVector(specL[begin:end], icsL.ScaleFactors[g][sfb])
				}

				if icsR == nil || !icsR.IsNoise(g, sfb) {
					continue
				}
				disablePrediction(icsR, sfb)
				begin, end := bandRange(icsR, base, sfb)
				if leftNoise && msUsed(icsL, g, sfb) {
					dep.randVector(specR[begin:end], icsR.ScaleFactors[g][sfb])
				} else {
					s.randVector(specR[begin:end], icsR.ScaleFactors[g][sfb])
				}
			}
			group++
		}
	}
}

// disablePrediction switches off LTP and MAIN prediction for a noise
// band; noise substitution takes precedence.
func disablePrediction(ics *syntax.ICStream, sfb uint8) {
	ics.LTP.LongUsed[sfb] = false
	ics.LTP2.LongUsed[sfb] = false
	ics.Pred.PredictionUsed[sfb] = false
}

func msUsed(ics *syntax.ICStream, g, sfb uint8) bool {
	return (ics.MSMaskPresent == 1 && ics.MSUsed[g][sfb] != 0) || ics.MSMaskPresent == 2
}

// bandRange returns the bins of band sfb in the window starting at base.
func bandRange(ics *syntax.ICStream, base uint16, sfb uint8) (uint16, uint16) {
	begin := base + min(ics.SWBOffset[sfb], ics.SWBOffsetMax)
	end := base + min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax)
	return begin, end
}

// randVector fills spec with noise of energy 2^(sf/2).
//
// Ported from: gen_rand_vector() in ~/dev/faad2/libfaad/pns.c:80-107
func (s *PNSState) randVector(spec []float32, scaleFactor int16) {
	if len(spec) == 0 {
		return
	}
	sf := max(min(scaleFactor, 120), -120)

	energy := 0.0
	for i := range spec {
		spec[i] = float32(int32(s.next()))
		energy += float64(spec[i]) * float64(spec[i])
	}
	if energy == 0 {
		return
	}
	scale := float32(math.Pow(2, 0.25*float64(sf)) / math.Sqrt(energy))
	for i := range spec {
		spec[i] *= scale
	}
}
