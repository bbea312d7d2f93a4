package reconstruct

import (
	"testing"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

const frameLength = 1024

// copyBank is a filter bank that passes the spectrum through as time
// samples and records the shapes it was called with.
type copyBank struct {
	calls     []int
	prevShape []uint8
	overlap   []float32
}

func (f *copyBank) Process(_ syntax.WindowSequence, _, prevShape uint8, spec, out []float32, ch int) {
	copy(out, spec)
	f.calls = append(f.calls, ch)
	f.prevShape = append(f.prevShape, prevShape)
}

func (f *copyBank) Overlap(int) []float32 {
	if f.overlap == nil {
		f.overlap = make([]float32, frameLength)
	}
	return f.overlap
}

func (f *copyBank) ForwardLTP(_ syntax.WindowSequence, _, _ uint8, _, out []float32) {
	clear(out)
}

// fakeSBR doubles the left channel into both halves and, with PS,
// copies it to the right channel.
type fakeSBR struct {
	ps        bool
	processed int
	right     bool
}

func (s *fakeSBR) Decode([]byte, int, bool) error { return nil }
func (s *fakeSBR) PSUsed() bool                   { return s.ps }

func (s *fakeSBR) Process(left, right []float32, _ bool) error {
	s.processed++
	s.right = right != nil
	copy(left[frameLength:], left[:frameLength])
	if right != nil {
		copy(right, left)
	}
	return nil
}

// longICS returns a long window ICS at 44.1 kHz with unity scalefactors.
func longICS(t *testing.T, maxSFB uint8) syntax.ICStream {
	t.Helper()
	ics := syntax.ICStream{WindowSequence: syntax.OnlyLongSequence, MaxSFB: maxSFB}
	if err := syntax.WindowGroupingInfo(&ics, 4, frameLength); err != nil {
		t.Fatalf("WindowGroupingInfo: %v", err)
	}
	for g := range ics.ScaleFactors {
		for sfb := range ics.ScaleFactors[g] {
			ics.ScaleFactors[g][sfb] = 100
		}
	}
	return ics
}

// quant returns a quantized spectrum with the given bins set.
func quant(bins map[int]int16) []int16 {
	q := make([]int16, frameLength)
	for k, v := range bins {
		q[k] = v
	}
	return q
}

func testConfig(chcfg config.ChannelConfiguration) *config.DecoderConfig {
	cfg := config.Default()
	cfg.ChannelConfiguration = chcfg
	return &cfg
}
