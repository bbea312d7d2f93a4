package spectrum

import (
	"testing"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

func TestTNSDecodeCoef(t *testing.T) {
	var lpc [TNSMaxOrder + 1]float32
	tnsDecodeCoef(2, 1, 0, []uint8{1, 2}, lpc[:])

	k1, k2 := 0.2079116908, 0.4067366431
	want := []float64{1, k1 + k2*k1, k2}
	for i, w := range want {
		if !near(float64(lpc[i]), w, 1e-6) {
			t.Errorf("lpc[%d]: got %v, want %v", i, lpc[i], w)
		}
	}
}

func tnsICS(t *testing.T, direction uint8) *syntax.ICStream {
	t.Helper()
	ics := testICS(t, syntax.OnlyLongSequence, 0, 49)
	ics.TNSDataPresent = true
	ics.TNS.NFilt[0] = 1
	ics.TNS.CoefRes[0] = 1
	ics.TNS.Length[0][0] = 49
	ics.TNS.Order[0][0] = 4
	ics.TNS.Direction[0][0] = direction
	ics.TNS.Coef[0][0] = [32]uint8{3, 12, 2, 1}
	return ics
}

func TestTNS_EncodeDecodeInverse(t *testing.T) {
	for _, dir := range []uint8{0, 1} {
		ics := tnsICS(t, dir)
		orig := make([]float32, 1024)
		for i := range orig {
			orig[i] = float32((i*37)%23) - 11
		}
		spec := append([]float32(nil), orig...)

		TNSEncodeFrame(ics, 4, config.ObjectTypeLC, spec, 1024)
		changed := false
		for i := range spec {
			if spec[i] != orig[i] {
				changed = true
				break
			}
		}
		if !changed {
			t.Fatalf("direction %d: analysis filter left the spectrum unchanged", dir)
		}

		TNSDecodeFrame(ics, 4, config.ObjectTypeLC, spec, 1024)
		for i := range spec {
			if !near(float64(spec[i]), float64(orig[i]), 1e-3) {
				t.Fatalf("direction %d bin %d: got %v, want %v", dir, i, spec[i], orig[i])
			}
		}
	}
}

func TestTNSDecodeFrame_Range(t *testing.T) {
	// LC at 44.1 kHz filters at most 42 long bands (bin 736)
	ics := tnsICS(t, 0)
	spec := make([]float32, 1024)
	spec[0] = 1
	spec[735] = 1
	spec[736] = 1

	TNSDecodeFrame(ics, 4, config.ObjectTypeLC, spec, 1024)

	if spec[1] == 0 {
		t.Error("impulse response missing inside the filtered range")
	}
	if spec[737] != 0 || spec[736] != 1 {
		t.Errorf("bins above the TNS range changed: %v %v", spec[736], spec[737])
	}
}

func TestTNSDecodeFrame_Disabled(t *testing.T) {
	ics := tnsICS(t, 0)
	ics.TNSDataPresent = false
	spec := filled(1024, 1)
	TNSDecodeFrame(ics, 4, config.ObjectTypeLC, spec, 1024)
	for i, v := range spec {
		if v != 1 {
			t.Fatalf("bin %d changed without TNS data", i)
		}
	}
}

func TestTNSDecodeFrame_ShortWindow(t *testing.T) {
	ics := testICS(t, syntax.EightShortSequence, 0, 14)
	ics.TNSDataPresent = true
	ics.TNS.NFilt[3] = 1
	ics.TNS.Length[3][0] = 14
	ics.TNS.Order[3][0] = 1
	ics.TNS.Coef[3][0][0] = 2

	spec := make([]float32, 1024)
	spec[3*128] = 1
	spec[0] = 1
	TNSDecodeFrame(ics, 4, config.ObjectTypeLC, spec, 1024)

	// y[n] = x[n] - a1*y[n-1]
	a1 := float64(tnsCoef03[2])
	if !near(float64(spec[3*128+1]), -a1, 1e-6) {
		t.Errorf("window 3 bin 1: got %v, want %v", spec[3*128+1], -a1)
	}
	if spec[1] != 0 {
		t.Error("window 0 filtered without a filter")
	}
}
