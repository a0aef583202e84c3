package match

import (
	"errors"
	"testing"

	"github.com/louisbranch/dicetable/internal/game/dice/dicetest"
	"github.com/louisbranch/dicetable/internal/game/scoring/scoringtest"
)

func TestJoinAppendsToRoster(t *testing.T) {
	m, owner := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())
	second := testParticipant(t, "p2", "Second")

	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}

	roster := m.Players()
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster members, got %d", len(roster))
	}
	if !roster[0].Equal(owner) || !roster[1].Equal(second) {
		t.Fatal("expected join order preserved before start")
	}
}

func TestJoinRejectsDuplicates(t *testing.T) {
	m, owner := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())

	if err := m.Join(owner); !errors.Is(err, ErrDuplicateJoin) {
		t.Fatalf("expected duplicate join error, got %v", err)
	}
}

func TestRosterLockedAfterStart(t *testing.T) {
	src := dicetest.NewScripted()
	m, _, second := startedMatch(t, scoringtest.New(), src)
	third := testParticipant(t, "p3", "Third")

	if err := m.Join(third); !errors.Is(err, ErrRosterLocked) {
		t.Fatalf("expected roster locked on join, got %v", err)
	}
	if err := m.Leave(second); !errors.Is(err, ErrRosterLocked) {
		t.Fatalf("expected roster locked on leave, got %v", err)
	}
}

func TestLeaveRemovesMember(t *testing.T) {
	m, _ := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())
	second := testParticipant(t, "p2", "Second")
	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := m.Leave(second); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if len(m.Players()) != 1 {
		t.Fatalf("expected 1 roster member, got %d", len(m.Players()))
	}
}

func TestLeaveRejectsNonMember(t *testing.T) {
	m, _ := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())
	stranger := testParticipant(t, "p9", "Stranger")

	if err := m.Leave(stranger); !errors.Is(err, ErrNotMember) {
		t.Fatalf("expected not-member error, got %v", err)
	}
}

// TestOwnerLeaveAbortsMatch covers the owner-abandonment outcome: the match
// transitions to finished and Leave reports the distinguished error rather
// than a plain success.
func TestOwnerLeaveAbortsMatch(t *testing.T) {
	m, owner := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())
	for _, id := range []string{"p2", "p3"} {
		if err := m.Join(testParticipant(t, id, id)); err != nil {
			t.Fatalf("join %s: %v", id, err)
		}
	}

	err := m.Leave(owner)
	if !errors.Is(err, ErrOwnerAbandoned) {
		t.Fatalf("expected owner-abandoned error, got %v", err)
	}
	if m.Lifecycle() != LifecycleFinished {
		t.Fatalf("expected finished lifecycle, got %v", m.Lifecycle())
	}
	if m.StopReason() != StopReasonOwnerAbandoned {
		t.Fatalf("expected abandonment stop reason, got %v", m.StopReason())
	}
	if m.IsCompleted() {
		t.Fatal("abandonment must not count as graceful completion")
	}
}

func TestStartChecks(t *testing.T) {
	m, owner := newTestMatch(t, Rules{}, scoringtest.New(), dicetest.NewScripted())
	second := testParticipant(t, "p2", "Second")
	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := m.Start(second); !errors.Is(err, ErrStartNotOwner) {
		t.Fatalf("expected non-owner start error, got %v", err)
	}
	if err := m.Start(owner); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Start(owner); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected double-start error, got %v", err)
	}

	if err := m.Stop(owner); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := m.Start(owner); !errors.Is(err, ErrMatchFinished) {
		t.Fatalf("expected finished error on restart, got %v", err)
	}
}

func TestStartShufflesRoster(t *testing.T) {
	src := dicetest.NewScripted()
	src.Perm = [][2]int{{0, 1}}
	fake := scoringtest.New()
	m, owner := newTestMatch(t, Rules{}, fake, src)
	second := testParticipant(t, "p2", "Second")
	if err := m.Join(second); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := m.Start(owner); err != nil {
		t.Fatalf("start: %v", err)
	}

	roster := m.Players()
	if !roster[0].Equal(second) || !roster[1].Equal(owner) {
		t.Fatal("expected the scripted permutation to reorder the roster")
	}
	if len(fake.Config.Roster) != 2 || !fake.Config.Roster[0].Equal(second) {
		t.Fatal("expected the engine to be built from the shuffled roster")
	}
	current, ok := m.CurrentPlayer()
	if !ok || !current.Equal(second) {
		t.Fatalf("expected the first shuffled member to hold the turn")
	}
}

func TestStopChecks(t *testing.T) {
	src := dicetest.NewScripted()
	m, owner, second := startedMatch(t, scoringtest.New(), src)

	if err := m.Stop(second); !errors.Is(err, ErrStopNotOwner) {
		t.Fatalf("expected non-owner stop error, got %v", err)
	}
	if err := m.Stop(owner); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if m.StopReason() != StopReasonOwnerStopped {
		t.Fatalf("expected owner stop reason, got %v", m.StopReason())
	}
	if err := m.Stop(owner); !errors.Is(err, ErrMatchFinished) {
		t.Fatalf("expected finished error on double stop, got %v", err)
	}
	if !m.LastActivity().IsZero() {
		t.Fatal("expected activity clock zeroed after stop")
	}
}
