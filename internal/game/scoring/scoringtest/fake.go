// Package scoringtest provides a scripted scoring engine for match tests.
package scoringtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring"
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

// Fake is a scoring.Engine with a fixed category list. Every category
// scores the sum of the hand; a category may be filled once per player and
// the scorecard is complete when every roster member filled every category.
type Fake struct {
	Config     scoring.Config
	Categories []scoring.Move

	committed map[string]map[scoring.Move]int
}

// New builds a Fake engine with the given categories. It fits the
// scoring.Factory signature via its Factory method.
func New(categories ...scoring.Move) *Fake {
	if len(categories) == 0 {
		categories = []scoring.Move{"first", "second"}
	}
	return &Fake{
		Categories: categories,
		committed:  make(map[string]map[scoring.Move]int),
	}
}

// Factory returns the fake itself, capturing the match config.
func (f *Fake) Factory(cfg scoring.Config) (scoring.Engine, error) {
	f.Config = cfg
	return f, nil
}

func (f *Fake) LegalMoves(p participant.Participant, hand []int) []scoring.ScoredMove {
	score := sum(hand)
	moves := make([]scoring.ScoredMove, 0, len(f.Categories))
	for _, category := range f.Categories {
		if _, used := f.committed[p.ID()][category]; used {
			continue
		}
		moves = append(moves, scoring.ScoredMove{Move: category, Score: score})
	}
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score })
	return moves
}

func (f *Fake) CommitMove(p participant.Participant, hand []int, move scoring.Move) (int, error) {
	known := false
	for _, category := range f.Categories {
		if category == move {
			known = true
			break
		}
	}
	if !known {
		return 0, apperrors.WithMetadata(apperrors.CodeMoveIllegal,
			fmt.Sprintf("unknown category %q", move),
			map[string]string{"Move": string(move)})
	}
	if _, used := f.committed[p.ID()][move]; used {
		return 0, apperrors.WithMetadata(apperrors.CodeMoveIllegal,
			fmt.Sprintf("category %q already filled", move),
			map[string]string{"Move": string(move)})
	}

	if f.committed[p.ID()] == nil {
		f.committed[p.ID()] = make(map[scoring.Move]int)
	}
	score := sum(hand)
	f.committed[p.ID()][move] = score
	return score, nil
}

func (f *Fake) IsComplete() bool {
	for _, p := range f.Config.Roster {
		if len(f.committed[p.ID()]) < len(f.Categories) {
			return false
		}
	}
	return len(f.Config.Roster) > 0
}

func (f *Fake) RenderPlayer(p participant.Participant) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:", p.Label())
	for _, category := range f.Categories {
		if score, used := f.committed[p.ID()][category]; used {
			fmt.Fprintf(&sb, " %s=%d", category, score)
		}
	}
	return sb.String()
}

func (f *Fake) RenderAll() string {
	lines := make([]string, 0, len(f.Config.Roster))
	for _, p := range f.Config.Roster {
		lines = append(lines, f.RenderPlayer(p))
	}
	return strings.Join(lines, "\n")
}

func (f *Fake) RenderFinal() string {
	return "final\n" + f.RenderAll()
}

// Total returns the committed score total for a participant.
func (f *Fake) Total(p participant.Participant) int {
	total := 0
	for _, score := range f.committed[p.ID()] {
		total += score
	}
	return total
}

func sum(hand []int) int {
	total := 0
	for _, face := range hand {
		total += face
	}
	return total
}
