package rng

// Sequence replays a fixed series of draws and then keeps returning the
// final value. Intended for deterministic tests.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence builds a Sequence over the given draws. An empty sequence
// always returns 1 - eps, i.e. it never triggers probability rolls.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0.999999
	}
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	return v
}
