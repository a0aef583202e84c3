// Package scoring defines the boundary to the scoring-combination engine.
//
// The game core never computes category legality or point values itself: a
// match is started with a Factory and delegates every move to the Engine it
// builds. Engine implementations live outside this module.
package scoring

import (
	"github.com/louisbranch/dicetable/internal/game/participant"
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

// Move names a scoring category.
type Move string

// ScoredMove pairs a legal move with the score it would achieve.
type ScoredMove struct {
	Move  Move
	Score int
}

// Config carries the rule-set flags and roster an Engine is built from.
type Config struct {
	Roster  []participant.Participant
	Yahtzee bool
	Forced  bool
	Maxi    bool
}

// Engine owns category legality, point computation and scorecard state.
type Engine interface {
	// LegalMoves enumerates moves for the hand, sorted by score descending.
	LegalMoves(p participant.Participant, hand []int) []ScoredMove
	// CommitMove records a move and returns the score achieved. It fails
	// with a move violation when the move is illegal or already filled.
	CommitMove(p participant.Participant, hand []int, move Move) (int, error)
	// IsComplete reports whether every category for every roster member is
	// filled.
	IsComplete() bool

	// Scoreboard rendering, delegated verbatim by the match queries.
	RenderPlayer(p participant.Participant) string
	RenderAll() string
	RenderFinal() string
}

// Factory builds an Engine when a match starts.
type Factory func(Config) (Engine, error)

// ErrIllegalMove is the move-violation sentinel Engine implementations
// return (or wrap) for illegal or already-filled categories.
var ErrIllegalMove = apperrors.New(apperrors.CodeMoveIllegal, "move is not legal for this hand")
