package match

import (
	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring"
)

// Join adds a participant to the roster. The roster is mutable only before
// the match starts.
func (m *Match) Join(p participant.Participant) error {
	if m.lifecycle != LifecycleNotStarted {
		return ErrRosterLocked
	}
	if m.isMember(p) {
		return ErrDuplicateJoin
	}
	m.roster = append(m.roster, p)
	m.touch()
	return nil
}

// Leave removes a participant from the roster. When the owner leaves, the
// whole match is aborted: the state transitions to LifecycleFinished and
// Leave reports ErrOwnerAbandoned so the caller can tell abandonment apart
// from a plain leave.
func (m *Match) Leave(p participant.Participant) error {
	if m.lifecycle != LifecycleNotStarted {
		return ErrRosterLocked
	}
	if !m.isMember(p) {
		return ErrNotMember
	}
	if p.Equal(m.owner) {
		m.finish(StopReasonOwnerAbandoned)
		return ErrOwnerAbandoned
	}

	for i, member := range m.roster {
		if member.Equal(p) {
			m.roster = append(m.roster[:i], m.roster[i+1:]...)
			break
		}
	}
	m.touch()
	return nil
}

// Start begins the match: the roster order is randomly permuted, the
// scoring engine is built from the roster and rule flags, and the first
// turn opens. Only the owner can start.
func (m *Match) Start(initiator participant.Participant) error {
	switch m.lifecycle {
	case LifecycleFinished:
		return ErrMatchFinished
	case LifecycleInProgress:
		return ErrAlreadyStarted
	}
	if len(m.roster) < 1 {
		return ErrRosterEmpty
	}
	if !initiator.Equal(m.owner) {
		return ErrStartNotOwner
	}

	shuffled := make([]participant.Participant, len(m.roster))
	copy(shuffled, m.roster)
	m.source.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	engine, err := m.engines(scoring.Config{
		Roster:  shuffled,
		Yahtzee: m.rules.Yahtzee,
		Forced:  m.rules.Forced,
		Maxi:    m.rules.Maxi,
	})
	if err != nil {
		return err
	}

	m.roster = shuffled
	m.engine = engine
	m.turn = 0
	m.lifecycle = LifecycleInProgress
	m.touch()
	return nil
}

// Stop ends the match early. Only the owner can stop a match that has not
// completed on its own; completion stops happen inside Commit.
func (m *Match) Stop(initiator participant.Participant) error {
	if m.lifecycle == LifecycleFinished {
		return ErrMatchFinished
	}
	if !initiator.Equal(m.owner) {
		return ErrStopNotOwner
	}
	m.finish(StopReasonOwnerStopped)
	return nil
}

// isMember reports roster membership by identity key.
func (m *Match) isMember(p participant.Participant) bool {
	for _, member := range m.roster {
		if member.Equal(p) {
			return true
		}
	}
	return false
}
