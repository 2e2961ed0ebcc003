package carousel

// Notches turns fractional wheel travel into whole card steps. A mouse wheel
// reports one unit per notch; a trackpad reports small deltas every frame.
type Notches struct {
	acc float64
}

// Add accumulates d and returns the whole steps it completes.
func (n *Notches) Add(d float64) int {
	n.acc += d
	step := int(n.acc)
	n.acc -= float64(step)
	return step
}
