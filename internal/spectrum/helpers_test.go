package spectrum

import (
	"math"
	"testing"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// testICS returns an ICS at 44.1 kHz with 1024 sample frames.
func testICS(t *testing.T, seq syntax.WindowSequence, grouping, maxSFB uint8) *syntax.ICStream {
	t.Helper()
	ics := &syntax.ICStream{WindowSequence: seq, ScaleFactorGrouping: grouping, MaxSFB: maxSFB}
	if err := syntax.WindowGroupingInfo(ics, 4, 1024); err != nil {
		t.Fatalf("WindowGroupingInfo: %v", err)
	}
	for g := range ics.ScaleFactors {
		for sfb := range ics.ScaleFactors[g] {
			ics.ScaleFactors[g][sfb] = 100
		}
	}
	return ics
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func filled(n int, v float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return s
}
