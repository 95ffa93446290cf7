package vg

// mask is a per-pixel clip coverage in [0, 1]. Masks are never modified
// once installed in a state, so saved states can share them.
type mask struct {
	width, height int
	alpha         []float32
}

func newMask(width, height int) *mask {
	return &mask{width: width, height: height, alpha: make([]float32, width*height)}
}

func (m *mask) at(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return float64(m.alpha[y*m.width+x])
}

func (m *mask) set(x, y int, v float64) {
	m.alpha[y*m.width+x] = float32(v)
}
