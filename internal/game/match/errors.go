package match

import (
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

var (
	// ErrRulesIncompatible indicates Maxi or Forced combined with Yahtzee scoring.
	ErrRulesIncompatible = apperrors.New(apperrors.CodeRulesIncompatible, "maxi and forced modes are valid only for yatzy scoring")
	// ErrInvalidConfig indicates a missing collaborator at construction.
	ErrInvalidConfig = apperrors.New(apperrors.CodeMatchInvalidConfig, "match configuration is incomplete")

	// ErrRosterLocked indicates a roster mutation after the match started.
	ErrRosterLocked = apperrors.New(apperrors.CodeRosterLocked, "roster cannot change after the match starts")
	// ErrDuplicateJoin indicates the participant already joined.
	ErrDuplicateJoin = apperrors.New(apperrors.CodeRosterDuplicateJoin, "participant already joined")
	// ErrNotMember indicates the participant is not in the roster.
	ErrNotMember = apperrors.New(apperrors.CodeRosterNotMember, "participant is not in the match")
	// ErrRosterEmpty indicates a start attempt with nobody joined.
	ErrRosterEmpty = apperrors.New(apperrors.CodeRosterEmpty, "at least one participant must join before start")
	// ErrOwnerAbandoned signals the owner left and the match was aborted.
	// The match is already Finished when this surfaces.
	ErrOwnerAbandoned = apperrors.New(apperrors.CodeRosterOwnerAbandoned, "owner has left, match is aborted")

	// ErrMatchNotStarted indicates a turn-scoped action before start.
	ErrMatchNotStarted = apperrors.New(apperrors.CodeTurnNotStarted, "match is not started")
	// ErrMatchFinished indicates an action on a finished match.
	ErrMatchFinished = apperrors.New(apperrors.CodeTurnFinished, "match is already finished")
	// ErrNotYourTurn indicates an action by a non-current participant.
	ErrNotYourTurn = apperrors.New(apperrors.CodeTurnNotYours, "it is not your turn")

	// ErrAlreadyStarted indicates a second start attempt.
	ErrAlreadyStarted = apperrors.New(apperrors.CodeMatchAlreadyStarted, "match is already started")
	// ErrStartNotOwner indicates a start attempt by a non-owner.
	ErrStartNotOwner = apperrors.New(apperrors.CodeStartNotOwner, "only the owner can start the match")
	// ErrStopNotOwner indicates a stop attempt by a non-owner.
	ErrStopNotOwner = apperrors.New(apperrors.CodeStopNotOwner, "only the owner can stop the match")

	// ErrHandAlreadyRolled indicates a second initial roll in one turn.
	ErrHandAlreadyRolled = apperrors.New(apperrors.CodeHandAlreadyRolled, "hand is already rolled this turn")
	// ErrHandMissing indicates a hand-scoped action before the initial roll.
	ErrHandMissing = apperrors.New(apperrors.CodeHandMissing, "no hand rolled yet")

	// ErrAlreadyPooled indicates a pool add for a queued position.
	ErrAlreadyPooled = apperrors.New(apperrors.CodeSelectionAlreadyPooled, "die is already queued for reroll")
	// ErrNotPooled indicates a pool removal for an absent position.
	ErrNotPooled = apperrors.New(apperrors.CodeSelectionNotPooled, "die is not queued for reroll")

	// ErrRerollBudgetExhausted indicates a third reroll with no saved rerolls.
	ErrRerollBudgetExhausted = apperrors.New(apperrors.CodeRerollBudgetExhausted, "cannot reroll more than twice")
)
