// Package participant defines the identity value type for match players.
//
// A Participant is supplied by the identity layer (for example a chat
// platform user) and is never minted by the game core. Equality is by ID
// only: display names are not stable and must never be used as roster keys.
package participant

import (
	"strings"

	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

var (
	// ErrEmptyID indicates a missing participant id.
	ErrEmptyID = apperrors.New(apperrors.CodeParticipantEmptyID, "participant id is required")
	// ErrEmptyDisplayName indicates a missing participant display name.
	ErrEmptyDisplayName = apperrors.New(apperrors.CodeParticipantEmptyDisplayName, "participant display name is required")
)

// Participant identifies a player and carries their display label.
type Participant struct {
	id          string
	displayName string
}

// New validates and builds a Participant.
func New(id, displayName string) (Participant, error) {
	id = strings.TrimSpace(id)
	displayName = strings.TrimSpace(displayName)
	if id == "" {
		return Participant{}, ErrEmptyID
	}
	if displayName == "" {
		return Participant{}, ErrEmptyDisplayName
	}
	return Participant{id: id, displayName: displayName}, nil
}

// ID returns the stable identity key.
func (p Participant) ID() string {
	return p.id
}

// Label returns the human-readable display name.
func (p Participant) Label() string {
	return p.displayName
}

// Equal reports whether two participants share the same identity key.
// Display names do not take part in equality.
func (p Participant) Equal(other Participant) bool {
	return p.id == other.id
}

// IsZero reports whether the participant carries no identity.
func (p Participant) IsZero() bool {
	return p.id == ""
}
