package reputation

import "math/rand/v2"

// Reputation values shown on the community ranking fall in [Min, Max).
const (
	Min = 1000
	Max = 6000
)

// Source supplies one reputation value per ranking entry.
type Source interface {
	Next() int
}

// Uniform draws uniformly from [Min, Max).
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform source. A zero seed uses the runtime's random state.
func NewUniform(seed uint64) *Uniform {
	if seed == 0 {
		return &Uniform{}
	}
	return &Uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *Uniform) Next() int {
	if u.rng == nil {
		return Min + rand.IntN(Max-Min)
	}
	return Min + u.rng.IntN(Max-Min)
}

// Sequence replays a fixed list of values, wrapping around at the end.
type Sequence struct {
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Next() int {
	if len(s.values) == 0 {
		return Min
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
