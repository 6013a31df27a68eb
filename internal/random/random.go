// Package random provides the randomness a shuffle needs: a uniform permutation
// of the current names and disposable placeholder names for opening cycles.
package random

import (
	"math/rand/v2"
	"strings"

	"github.com/Juliapixel/emote-shuffler/internal/planner"
)

// alphabet is the character set placeholder names are drawn from.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultTempNameLength is the placeholder name length used when none is configured.
const DefaultTempNameLength = 16

// Rand is a source of shuffles and placeholder names. It is not safe for
// concurrent use.
type Rand struct {
	rng *rand.Rand
}

// New creates a Rand with a random seed.
func New() *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a Rand whose output is fully determined by seed.
func NewSeeded(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes s in place, uniformly over all orderings.
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// TempName returns a random alphanumeric string of the given length.
func (r *Rand) TempName(length int) string {
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(alphabet[r.rng.IntN(len(alphabet))])
	}
	return b.String()
}

// TempNamer returns a planner.TempNamer drawing names of the given length.
func (r *Rand) TempNamer(length int) planner.TempNamer {
	if length <= 0 {
		length = DefaultTempNameLength
	}
	return planner.TempNamerFunc(func() string {
		return r.TempName(length)
	})
}
