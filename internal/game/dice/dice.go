// Package dice implements the die-face randomness source for match play.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Faces is the number of faces on a table die.
const Faces = 6

// Source produces uniform die faces and random roster permutations.
// Implementations must be uniform and independent per call.
type Source interface {
	// Draw returns a single face in 1..Faces.
	Draw() int
	// DrawN returns n faces in 1..Faces, in draw order.
	DrawN(n int) []int
	// Shuffle randomly permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSource returns a deterministic Source for the given seed.
//
// Given the same seed and the same call sequence, a Source always produces
// the same faces and permutations.
func NewSource(seed int64) Source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

type source struct {
	rng *rand.Rand
}

func (s *source) Draw() int {
	return s.rng.Intn(Faces) + 1
}

func (s *source) DrawN(n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = s.Draw()
	}
	return faces
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
