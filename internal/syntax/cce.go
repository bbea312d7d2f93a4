package syntax

import "math"

// CouplingPoint is where a coupling channel is mixed into its targets.
type CouplingPoint uint8

// Coupling points, in processing order.
const (
	BeforeTNS CouplingPoint = iota
	AfterTNS
	AfterIMDCT
)

func (p CouplingPoint) String() string {
	switch p {
	case BeforeTNS:
		return "before-tns"
	case AfterTNS:
		return "after-tns"
	case AfterIMDCT:
		return "after-imdct"
	default:
		return "unknown"
	}
}

// CouplingTarget addresses one single or pair element a coupling channel
// is mixed into. ChSelect is 2 for a single target; for a pair it is
// cc_l<<1 | cc_r.
type CouplingTarget struct {
	ID       uint8
	IsPair   bool
	ChSelect uint8
}

// CouplingGain holds one gain list, indexed by window group and band.
type CouplingGain [MaxWindowGroups][MaxSFB]float32

// ccScale is the gain step for each gain_element_scale value.
var ccScale = [4]float64{
	math.Pow(2, 1.0/8), math.Pow(2, 1.0/4), math.Sqrt2, 2,
}

// Coupling is a coupling channel element.
type Coupling struct {
	Tag                   uint8
	IndependentlySwitched bool
	Point                 CouplingPoint
	Targets               []CouplingTarget
	GainElementSign       bool
	GainElementScale      uint8

	// Gains has one list per target channel; list 0 is always unity.
	Gains []CouplingGain

	ICS   ICStream
	Spec  []int16
	State ChannelState
}

// ParseCoupling parses coupling_channel_element() into c and computes the
// gain lists.
//
// Ported from: coupling_channel_element() in ~/dev/faad2/libfaad/syntax.c:987-1076
func ParseCoupling(r BitReader, c *Coupling, cfg *StreamConfig) error {
	c.Tag = uint8(r.GetBits(LenTag))
	c.IndependentlySwitched = r.Get1Bit() != 0
	numCoupled := int(r.GetBits(3))

	c.Targets = c.Targets[:0]
	numGainLists := 0
	for i := 0; i <= numCoupled; i++ {
		numGainLists++
		t := CouplingTarget{ChSelect: 2}
		t.IsPair = r.Get1Bit() != 0
		t.ID = uint8(r.GetBits(LenTag))
		if t.IsPair {
			ccl := uint8(r.Get1Bit())
			ccr := uint8(r.Get1Bit())
			t.ChSelect = ccl<<1 | ccr
			if t.ChSelect == 3 {
				numGainLists++
			}
		}
		c.Targets = append(c.Targets, t)
	}

	ccDomain := r.Get1Bit() != 0
	switch {
	case c.IndependentlySwitched:
		c.Point = AfterIMDCT
	case ccDomain:
		c.Point = AfterTNS
	default:
		c.Point = BeforeTNS
	}
	c.GainElementSign = r.Get1Bit() != 0
	c.GainElementScale = uint8(r.GetBits(2))

	c.ICS = ICStream{}
	c.Spec = specBuffer(c.Spec, cfg.FrameLength)
	sc := *cfg
	sc.CommonWindow = false
	if err := ParseIndividualChannelStream(r, &c.ICS, c.Spec, &sc); err != nil {
		return err
	}
	if c.ICS.IsUsed {
		return ErrIntensityStereoInCCE
	}

	return c.parseGains(r, numGainLists, cfg.Codebooks)
}

// parseGains reads gain element lists 1..n-1 and converts them to linear
// gains. A common gain element is one scalefactor delta for the whole
// list; otherwise every band with a nonzero codebook carries a DPCM
// delta.
func (c *Coupling) parseGains(r BitReader, n int, cb Codebooks) error {
	if cap(c.Gains) < n {
		c.Gains = make([]CouplingGain, n)
	}
	c.Gains = c.Gains[:n]
	fillGain(&c.Gains[0], 1)

	scale := ccScale[c.GainElementScale]
	for i := 1; i < n; i++ {
		common := true
		if !c.IndependentlySwitched {
			common = r.Get1Bit() != 0
		}
		if common {
			d, err := scaleFactorDelta(r, cb)
			if err != nil {
				return err
			}
			fillGain(&c.Gains[i], gainFactor(d, c.GainElementSign, scale))
			continue
		}

		acc := 0
		gain := float32(1)
		for g := uint8(0); g < c.ICS.NumWindowGroups; g++ {
			for sfb := uint8(0); sfb < c.ICS.MaxSFB; sfb++ {
				if c.ICS.SFBCB[g][sfb] != ZeroHCB {
					d, err := scaleFactorDelta(r, cb)
					if err != nil {
						return err
					}
					acc += d
					gain = gainFactor(acc, c.GainElementSign, scale)
				}
				c.Gains[i][g][sfb] = gain
			}
		}
	}
	return nil
}

// gainFactor converts a gain element value to a linear gain. With signed
// gain elements the low bit carries the sign.
func gainFactor(v int, signed bool, scale float64) float32 {
	s := 1.0
	if signed {
		s = float64(1 - 2*(v&1))
		v >>= 1
	}
	return float32(s * math.Pow(scale, float64(-v)))
}

func fillGain(g *CouplingGain, v float32) {
	for w := range g {
		for b := range g[w] {
			g[w][b] = v
		}
	}
}
