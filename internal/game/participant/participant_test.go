package participant

import (
	"errors"
	"testing"
)

func TestNewTrimsAndValidates(t *testing.T) {
	p, err := New("  user-1  ", "  Ada Lovelace ")
	if err != nil {
		t.Fatalf("new participant: %v", err)
	}
	if p.ID() != "user-1" {
		t.Fatalf("expected trimmed id, got %q", p.ID())
	}
	if p.Label() != "Ada Lovelace" {
		t.Fatalf("expected trimmed label, got %q", p.Label())
	}
	if p.IsZero() {
		t.Fatal("expected non-zero participant")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		displayName string
		err         error
	}{
		{name: "empty id", id: "  ", displayName: "Ada", err: ErrEmptyID},
		{name: "empty display name", id: "user-1", displayName: "", err: ErrEmptyDisplayName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.displayName)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

// TestEqualIgnoresDisplayName ensures identity is keyed by ID alone: the
// same user renamed mid-lobby is still the same roster member.
func TestEqualIgnoresDisplayName(t *testing.T) {
	before, err := New("user-1", "Ada")
	if err != nil {
		t.Fatalf("new participant: %v", err)
	}
	after, err := New("user-1", "Countess of Lovelace")
	if err != nil {
		t.Fatalf("new participant: %v", err)
	}
	other, err := New("user-2", "Ada")
	if err != nil {
		t.Fatalf("new participant: %v", err)
	}

	if !before.Equal(after) {
		t.Fatal("expected same id to compare equal across renames")
	}
	if before.Equal(other) {
		t.Fatal("expected different ids to compare unequal despite same label")
	}
}
