package reconstruct

// buffers is the time domain output matrix, one row per output channel.
type buffers [][]float32

// resize returns b with chs rows of n samples. The matrix is kept when
// its shape already matches, otherwise it is reallocated.
func (b buffers) resize(chs, n int) buffers {
	if len(b) == chs && chs > 0 && len(b[0]) == n {
		return b
	}
	m := make(buffers, chs)
	for i := range m {
		m[i] = make([]float32, n)
	}
	return m
}
