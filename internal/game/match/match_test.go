package match

import (
	"testing"

	"github.com/louisbranch/dicetable/internal/game/dice/dicetest"
	"github.com/louisbranch/dicetable/internal/game/scoring"
	"github.com/louisbranch/dicetable/internal/game/scoring/scoringtest"
)

// TestStandardTwoPlayerFlow plays a full opening exchange: join, start,
// roll, single-die reroll, commit, and checks the table is handed over
// cleanly to the next player.
func TestStandardTwoPlayerFlow(t *testing.T) {
	fake := scoringtest.New("first", "second")
	src := dicetest.NewScripted()
	m, owner := newTestMatch(t, Rules{}, fake, src)
	second := testParticipant(t, "p2", "Second Player")
	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := m.Start(owner); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !m.IsInProgress() {
		t.Fatal("expected match in progress")
	}

	current, ok := m.CurrentPlayer()
	if !ok {
		t.Fatal("expected a current player")
	}

	src.Append(2, 2, 3, 5, 6)
	hand, err := m.Roll(current)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if len(hand) != m.DiceCount() {
		t.Fatalf("expected %d dice, got %d", m.DiceCount(), len(hand))
	}

	src.Append(4)
	if _, err := m.Reroll(current, []int{1}); err != nil {
		t.Fatalf("reroll: %v", err)
	}

	score, err := m.Commit(current, "first")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if score != 2+3+4+5+6 {
		t.Fatalf("expected score 20, got %d", score)
	}

	next, ok := m.CurrentPlayer()
	if !ok {
		t.Fatal("expected a current player after commit")
	}
	if next.Equal(current) {
		t.Fatal("expected the turn to pass to the other player")
	}
	nextHand, err := m.Hand(next)
	if err != nil {
		t.Fatalf("hand: %v", err)
	}
	if nextHand != nil {
		t.Fatalf("expected a fresh turn with no hand, got %v", nextHand)
	}
}

// TestFullMatchToCompletion drives both players through every category and
// checks the match ends gracefully with consistent standings.
func TestFullMatchToCompletion(t *testing.T) {
	fake := scoringtest.New("first", "second")
	src := dicetest.NewScripted()
	m, _, _ := startedMatch(t, fake, src)

	categories := []scoring.Move{"first", "second"}
	for round := 0; round < 2; round++ {
		for player := 0; player < 2; player++ {
			current, ok := m.CurrentPlayer()
			if !ok {
				t.Fatalf("round %d: expected a current player", round)
			}
			src.Append(1, 1, 1, 1, 1)
			if _, err := m.Roll(current); err != nil {
				t.Fatalf("roll: %v", err)
			}
			if _, err := m.Commit(current, categories[round]); err != nil {
				t.Fatalf("commit: %v", err)
			}
		}
	}

	if !m.IsCompleted() {
		t.Fatal("expected graceful completion after all categories")
	}
	final, err := m.ScoresFinal()
	if err != nil {
		t.Fatalf("scores final: %v", err)
	}
	if final == "" {
		t.Fatal("expected final standings")
	}
}
