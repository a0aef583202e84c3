// Package match implements the turn-management core of a Yatzy/Yahtzee
// match: roster formation, the turn and reroll state machine, the staged
// reroll pool, and the Maxi saved-reroll bank.
//
// A Match is a synchronous state machine with no internal locking. Callers
// must serialize all operations against one Match instance, typically
// behind a per-match mutex or a single-worker queue in the dispatch layer.
// Every operation either fully succeeds or fails with a typed error from
// the platform errors package, leaving the state untouched.
package match

import (
	"time"

	"github.com/louisbranch/dicetable/internal/game/dice"
	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring"
)

// Lifecycle describes the match lifecycle state.
type Lifecycle int

const (
	// LifecycleNotStarted indicates the roster is still forming.
	LifecycleNotStarted Lifecycle = iota
	// LifecycleInProgress indicates turns are being played.
	LifecycleInProgress
	// LifecycleFinished is terminal; no further mutation is accepted.
	LifecycleFinished
)

// StopReason records how a match reached LifecycleFinished.
type StopReason int

const (
	// StopReasonNone indicates the match has not stopped.
	StopReasonNone StopReason = iota
	// StopReasonOwnerStopped indicates the owner stopped the match early.
	StopReasonOwnerStopped
	// StopReasonOwnerAbandoned indicates the owner left before start.
	StopReasonOwnerAbandoned
	// StopReasonCompleted indicates every scorecard was filled.
	StopReasonCompleted
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleNotStarted:
		return "NOT_STARTED"
	case LifecycleInProgress:
		return "IN_PROGRESS"
	case LifecycleFinished:
		return "FINISHED"
	default:
		return "UNSPECIFIED"
	}
}

func (r StopReason) String() string {
	switch r {
	case StopReasonNone:
		return "NONE"
	case StopReasonOwnerStopped:
		return "OWNER_STOPPED"
	case StopReasonOwnerAbandoned:
		return "OWNER_ABANDONED"
	case StopReasonCompleted:
		return "COMPLETED"
	default:
		return "UNSPECIFIED"
	}
}

// baseRerolls is the per-turn reroll budget before bank consumption.
const baseRerolls = 2

// Match models exactly one game table from roster formation to completion.
type Match struct {
	id      string
	owner   participant.Participant
	rules   Rules
	engines scoring.Factory
	source  dice.Source
	now     func() time.Time

	roster     []participant.Participant
	lifecycle  Lifecycle
	stopReason StopReason
	engine     scoring.Engine
	turn       int

	hand         []int
	rerollsUsed  int
	pool         map[int]struct{}
	savedRerolls map[string]int
	lastActivity time.Time
}

// New creates a match in LifecycleNotStarted with the owner as the sole
// roster member. The dice source and scoring factory are required; nil now
// defaults to time.Now.
func New(id string, owner participant.Participant, rules Rules, source dice.Source, engines scoring.Factory, now func() time.Time) (*Match, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if owner.IsZero() || source == nil || engines == nil {
		return nil, ErrInvalidConfig
	}
	if now == nil {
		now = time.Now
	}

	m := &Match{
		id:           id,
		owner:        owner,
		rules:        rules,
		engines:      engines,
		source:       source,
		now:          now,
		roster:       []participant.Participant{owner},
		pool:         make(map[int]struct{}),
		savedRerolls: make(map[string]int),
	}
	m.touch()
	return m, nil
}

// touch refreshes the activity timestamp after a state mutation.
func (m *Match) touch() {
	m.lastActivity = m.now().UTC()
}

// finish transitions to the terminal state and zeroes the activity clock
// so the idle reaper skips finished matches.
func (m *Match) finish(reason StopReason) {
	m.lifecycle = LifecycleFinished
	m.stopReason = reason
	m.lastActivity = time.Time{}
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Owner returns the participant who created the match.
func (m *Match) Owner() participant.Participant {
	return m.owner
}

// Rules returns the rule-set flags the match was created with.
func (m *Match) Rules() Rules {
	return m.rules
}

// Variant returns the derived rule-set variant.
func (m *Match) Variant() Variant {
	return m.rules.Variant()
}

// DiceCount returns the number of dice played in this match.
func (m *Match) DiceCount() int {
	return m.rules.DiceCount()
}

// Players returns the roster in turn order.
func (m *Match) Players() []participant.Participant {
	roster := make([]participant.Participant, len(m.roster))
	copy(roster, m.roster)
	return roster
}

// IsNotStarted reports whether the roster is still forming.
func (m *Match) IsNotStarted() bool {
	return m.lifecycle == LifecycleNotStarted
}

// IsInProgress reports whether turns are being played.
func (m *Match) IsInProgress() bool {
	return m.lifecycle == LifecycleInProgress
}

// IsCompleted reports whether the match finished gracefully with every
// scorecard filled, as opposed to an owner stop or abandonment.
func (m *Match) IsCompleted() bool {
	return m.lifecycle == LifecycleFinished && m.stopReason == StopReasonCompleted
}

// Lifecycle returns the current lifecycle state.
func (m *Match) Lifecycle() Lifecycle {
	return m.lifecycle
}

// StopReason returns how the match finished, or StopReasonNone.
func (m *Match) StopReason() StopReason {
	return m.stopReason
}

// CurrentPlayer returns the participant whose turn it is. The second
// return is false unless the match is in progress.
func (m *Match) CurrentPlayer() (participant.Participant, bool) {
	if m.lifecycle != LifecycleInProgress {
		return participant.Participant{}, false
	}
	return m.roster[m.turn], true
}

// LastActivity returns the wall-clock time of the last state-mutating
// operation, or the zero time once the match finished.
func (m *Match) LastActivity() time.Time {
	return m.lastActivity
}

// SavedRerolls returns the participant's carried reroll bank. It is always
// zero outside Maxi.
func (m *Match) SavedRerolls(p participant.Participant) int {
	return m.savedRerolls[p.ID()]
}

// RerollsUsed returns how many budget rerolls were spent this turn.
func (m *Match) RerollsUsed() int {
	return m.rerollsUsed
}
