// internal/services/idea-generator/random.go
package ideagenerator

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies uniform draws in [0, n). Implementations must be safe
// for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for a non-zero seed and the
// runtime's global generator otherwise.
func NewSource(seed uint64) RandomSource {
	if seed == 0 {
		return runtimeSource{}
	}
	return NewSeededSource(seed)
}

// NewSeededSource returns a mutex-guarded PCG source. Equal seeds yield equal sequences.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

type runtimeSource struct{}

func (runtimeSource) IntN(n int) int {
	return rand.IntN(n)
}
