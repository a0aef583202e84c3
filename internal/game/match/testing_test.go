package match

import (
	"testing"
	"time"

	"github.com/louisbranch/dicetable/internal/game/dice"
	"github.com/louisbranch/dicetable/internal/game/dice/dicetest"
	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring/scoringtest"
)

// testClock returns a now func that advances one second per call, so
// activity-timestamp assertions can tell successive mutations apart.
func testClock() func() time.Time {
	current := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func testParticipant(t *testing.T, id, name string) participant.Participant {
	t.Helper()
	p, err := participant.New(id, name)
	if err != nil {
		t.Fatalf("new participant %s: %v", id, err)
	}
	return p
}

// newTestMatch builds a match owned by "owner" with a scripted dice source
// and the fake scoring engine. The scripted shuffle is the identity
// permutation, so turn order equals join order.
func newTestMatch(t *testing.T, rules Rules, fake *scoringtest.Fake, src dice.Source) (*Match, participant.Participant) {
	t.Helper()
	owner := testParticipant(t, "owner", "Owner")
	m, err := New("match-1", owner, rules, src, fake.Factory, testClock())
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	return m, owner
}

// startedMatch builds and starts a standard two-player match. Turn order
// is owner first, then "p2".
func startedMatch(t *testing.T, fake *scoringtest.Fake, src *dicetest.Scripted) (*Match, participant.Participant, participant.Participant) {
	t.Helper()
	m, owner := newTestMatch(t, Rules{}, fake, src)
	second := testParticipant(t, "p2", "Second Player")
	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := m.Start(owner); err != nil {
		t.Fatalf("start: %v", err)
	}
	return m, owner, second
}
