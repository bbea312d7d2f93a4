package output

// Downmix coefficients of ITU-R BS.775-1.
//
// Source: ~/dev/faad2/libfaad/output.c:41-42
const (
	dmMul  = float32(0.3203772410170407) // 1/(1+sqrt(2)+1/sqrt(2))
	rsqrt2 = float32(0.7071067811865475244)
)

// Input channel positions of a 5.1 frame in element order.
const (
	chCenter = iota
	chLeft
	chRight
	chRearLeft
	chRearRight
)

// downmixChannels is the layout the stereo downmix applies to.
const downmixChannels = 6

// sample returns output channel ch of sample i. With downmix, channel 0
// and 1 fold the 5.1 input to stereo and the LFE is dropped.
//
// Ported from: get_sample() in ~/dev/faad2/libfaad/output.c:45-61
func sample(in [][]float32, ch, i int, downmix bool) float32 {
	if !downmix {
		return in[ch][i]
	}
	if ch == 0 {
		return dmMul * (in[chLeft][i] + in[chCenter][i]*rsqrt2 + in[chRearLeft][i]*rsqrt2)
	}
	return dmMul * (in[chRight][i] + in[chCenter][i]*rsqrt2 + in[chRearRight][i]*rsqrt2)
}
