// Package errors provides structured error handling for the dice table.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Configuration errors
	CodeRulesIncompatible  Code = "RULES_INCOMPATIBLE"
	CodeMatchInvalidConfig Code = "MATCH_INVALID_CONFIG"

	// Roster errors
	CodeRosterLocked         Code = "ROSTER_LOCKED"
	CodeRosterDuplicateJoin  Code = "ROSTER_DUPLICATE_JOIN"
	CodeRosterNotMember      Code = "ROSTER_NOT_MEMBER"
	CodeRosterEmpty          Code = "ROSTER_EMPTY"
	CodeRosterOwnerAbandoned Code = "ROSTER_OWNER_ABANDONED"

	// Turn errors
	CodeTurnNotStarted Code = "TURN_MATCH_NOT_STARTED"
	CodeTurnFinished   Code = "TURN_MATCH_FINISHED"
	CodeTurnNotYours   Code = "TURN_NOT_YOURS"

	// Sequencing errors
	CodeHandAlreadyRolled   Code = "HAND_ALREADY_ROLLED"
	CodeHandMissing         Code = "HAND_MISSING"
	CodeMatchAlreadyStarted Code = "MATCH_ALREADY_STARTED"
	CodeStartNotOwner       Code = "START_NOT_OWNER"
	CodeStopNotOwner        Code = "STOP_NOT_OWNER"

	// Selection errors
	CodeSelectionCountOutOfRange    Code = "SELECTION_COUNT_OUT_OF_RANGE"
	CodeSelectionPositionOutOfRange Code = "SELECTION_POSITION_OUT_OF_RANGE"
	CodeSelectionAlreadyPooled      Code = "SELECTION_ALREADY_POOLED"
	CodeSelectionNotPooled          Code = "SELECTION_NOT_POOLED"

	// Budget errors
	CodeRerollBudgetExhausted Code = "REROLL_BUDGET_EXHAUSTED"

	// Move errors (raised by the scoring engine, passed through unchanged)
	CodeMoveIllegal Code = "MOVE_ILLEGAL"

	// Participant errors
	CodeParticipantEmptyID          Code = "PARTICIPANT_EMPTY_ID"
	CodeParticipantEmptyDisplayName Code = "PARTICIPANT_EMPTY_DISPLAY_NAME"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRulesIncompatible,
		CodeMatchInvalidConfig,
		CodeSelectionCountOutOfRange,
		CodeSelectionPositionOutOfRange,
		CodeParticipantEmptyID,
		CodeParticipantEmptyDisplayName:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeRosterLocked,
		CodeRosterEmpty,
		CodeRosterOwnerAbandoned,
		CodeTurnNotStarted,
		CodeTurnFinished,
		CodeHandAlreadyRolled,
		CodeHandMissing,
		CodeMatchAlreadyStarted,
		CodeSelectionAlreadyPooled,
		CodeSelectionNotPooled,
		CodeMoveIllegal:
		return codes.FailedPrecondition

	// PermissionDenied - acting participant lacks the right
	case CodeTurnNotYours,
		CodeStartNotOwner,
		CodeStopNotOwner:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeRosterNotMember:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeRosterDuplicateJoin:
		return codes.AlreadyExists

	// ResourceExhausted - budget spent
	case CodeRerollBudgetExhausted:
		return codes.ResourceExhausted

	default:
		return codes.Internal
	}
}
