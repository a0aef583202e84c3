// Package dicetest provides a scripted dice source for deterministic tests.
package dicetest

// Scripted is a dice.Source that replays a fixed sequence of faces.
// Shuffle is the identity permutation unless Perm is set, so roster order in
// tests matches join order.
type Scripted struct {
	faces []int
	next  int

	// Perm, when set, is applied by Shuffle as a sequence of swaps.
	Perm [][2]int
}

// NewScripted returns a Scripted source replaying the given faces.
func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: faces}
}

// Append queues more faces at the end of the script.
func (s *Scripted) Append(faces ...int) {
	s.faces = append(s.faces, faces...)
}

// Remaining reports how many scripted faces are left.
func (s *Scripted) Remaining() int {
	return len(s.faces) - s.next
}

func (s *Scripted) Draw() int {
	if s.next >= len(s.faces) {
		panic("dicetest: scripted faces exhausted")
	}
	face := s.faces[s.next]
	s.next++
	return face
}

func (s *Scripted) DrawN(n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = s.Draw()
	}
	return faces
}

func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	for _, p := range s.Perm {
		if p[0] < n && p[1] < n {
			swap(p[0], p[1])
		}
	}
}
