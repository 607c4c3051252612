package generate

import (
	"errors"
	"math/rand"
)

// ErrPoolExhausted is returned once every value in the pool's range has been
// issued.
var ErrPoolExhausted = errors.New("identifier pool exhausted")

// idPool issues non-repeating random integers from the inclusive range
// [min, max]. It is scoped to a single generation run and is not safe for
// concurrent use.
type idPool struct {
	min, max int
	rng      *rand.Rand
	issued   map[int]struct{}
}

func newIDPool(min, max int, rng *rand.Rand) *idPool {
	return &idPool{
		min:    min,
		max:    max,
		rng:    rng,
		issued: make(map[int]struct{}),
	}
}

// capacity returns the number of distinct values the range holds.
func (p *idPool) capacity() int {
	return p.max - p.min + 1
}

// next draws a value that has not been issued before. Draws are rejected and
// retried on collision, so the expected cost grows as the pool fills.
func (p *idPool) next() (int, error) {
	if len(p.issued) >= p.capacity() {
		return 0, ErrPoolExhausted
	}
	for {
		v := p.min + p.rng.Intn(p.capacity())
		if _, taken := p.issued[v]; taken {
			continue
		}
		p.issued[v] = struct{}{}
		return v, nil
	}
}
