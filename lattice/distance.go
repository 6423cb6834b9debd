package lattice

// AxisDistance returns the distance between components a and b on axis.
// Non-periodic axes use |a-b|. Periodic axes take the smallest of the
// direct distance and the two routes through the boundaries,
// |a-0|+|b-(N-1)| and |a-(N-1)|+|b-0|; the boundary step itself is not
// counted, so the two extreme cells of a periodic axis are at distance 0.
func (l *Lattice) AxisDistance(axis, a, b int) int {
	direct := abs(a - b)
	if !l.Periodic(axis) {
		return direct
	}
	upper := l.shape[axis] - 1
	viaLower := abs(a) + abs(b-upper)
	viaUpper := abs(a-upper) + abs(b)

	return min(direct, viaLower, viaUpper)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
