package match

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring"
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

// turnGate is the single enforcement point for turn-scoped operations:
// the match must be in progress and the acting participant must hold the
// turn cursor.
func (m *Match) turnGate(p participant.Participant) error {
	switch m.lifecycle {
	case LifecycleNotStarted:
		return ErrMatchNotStarted
	case LifecycleFinished:
		return ErrMatchFinished
	}
	if !m.roster[m.turn].Equal(p) {
		return ErrNotYourTurn
	}
	return nil
}

// Roll performs the initial roll of the turn and returns the sorted hand.
// At most one initial roll is allowed per turn.
func (m *Match) Roll(p participant.Participant) ([]int, error) {
	if err := m.turnGate(p); err != nil {
		return nil, err
	}
	if m.hand != nil {
		return nil, ErrHandAlreadyRolled
	}

	hand := m.source.DrawN(m.rules.DiceCount())
	sort.Ints(hand)
	m.hand = hand
	m.touch()
	return m.handCopy(), nil
}

// Reroll redraws the dice at the selected positions and returns the
// re-sorted hand. Positions are 1-based and address the hand as it was
// last shown: the hand re-sorts after every roll and reroll, so a position
// refers to the current displayed slot, not a stable die identity.
//
// The first two rerolls of a turn consume the per-turn budget. Under Maxi
// a third or later reroll consumes one unit of the participant's saved
// bank instead; otherwise the budget is exhausted.
func (m *Match) Reroll(p participant.Participant, positions []int) ([]int, error) {
	selected, err := m.selectionCheck(p, positions)
	if err != nil {
		return nil, err
	}

	if m.rerollsUsed >= baseRerolls {
		if !m.rules.Maxi || m.savedRerolls[p.ID()] == 0 {
			return nil, ErrRerollBudgetExhausted
		}
		m.savedRerolls[p.ID()]--
	} else {
		m.rerollsUsed++
	}

	for _, position := range selected {
		m.hand[position-1] = m.source.Draw()
	}
	sort.Ints(m.hand)
	m.touch()
	return m.handCopy(), nil
}

// selectionCheck validates a reroll selection: turn gate, rolled hand,
// selection count within 1..diceCount, every position in range. It returns
// the deduplicated positions in ascending order.
func (m *Match) selectionCheck(p participant.Participant, positions []int) ([]int, error) {
	diceCount := m.rules.DiceCount()
	if err := m.turnGate(p); err != nil {
		return nil, err
	}
	if m.hand == nil {
		return nil, ErrHandMissing
	}
	if len(positions) < 1 || len(positions) > diceCount {
		return nil, apperrors.WithMetadata(apperrors.CodeSelectionCountOutOfRange,
			fmt.Sprintf("select from 1 to %d dice to reroll", diceCount),
			map[string]string{"DiceCount": strconv.Itoa(diceCount)})
	}

	seen := make(map[int]struct{}, len(positions))
	selected := make([]int, 0, len(positions))
	for _, position := range positions {
		if position < 1 || position > diceCount {
			return nil, apperrors.WithMetadata(apperrors.CodeSelectionPositionOutOfRange,
				fmt.Sprintf("die positions must be in range 1-%d", diceCount),
				map[string]string{
					"Position":  strconv.Itoa(position),
					"DiceCount": strconv.Itoa(diceCount),
				})
		}
		if _, dup := seen[position]; dup {
			continue
		}
		seen[position] = struct{}{}
		selected = append(selected, position)
	}
	sort.Ints(selected)
	return selected, nil
}

// LegalMoves lists the scoring options for the current hand, best first.
func (m *Match) LegalMoves(p participant.Participant) ([]scoring.ScoredMove, error) {
	if err := m.turnGate(p); err != nil {
		return nil, err
	}
	if m.hand == nil {
		return nil, ErrHandMissing
	}
	return m.engine.LegalMoves(p, m.handCopy()), nil
}

// Commit records a move with the scoring engine and closes the turn: under
// Maxi the unused reroll budget is credited to the participant's bank, the
// turn cursor advances, and the per-turn state resets. When the engine
// reports every scorecard complete the match finishes gracefully.
func (m *Match) Commit(p participant.Participant, move scoring.Move) (int, error) {
	if err := m.turnGate(p); err != nil {
		return 0, err
	}
	if m.hand == nil {
		return 0, ErrHandMissing
	}

	score, err := m.engine.CommitMove(p, m.handCopy(), move)
	if err != nil {
		return 0, err
	}

	if m.rules.Maxi {
		m.savedRerolls[p.ID()] += baseRerolls - m.rerollsUsed
	}

	m.turn = (m.turn + 1) % len(m.roster)
	m.hand = nil
	m.rerollsUsed = 0
	m.pool = make(map[int]struct{})
	m.touch()

	if m.engine.IsComplete() {
		m.finish(StopReasonCompleted)
	}
	return score, nil
}

// Hand returns a copy of the current hand, or nil before the initial roll.
// Subject to the turn gate.
func (m *Match) Hand(p participant.Participant) ([]int, error) {
	if err := m.turnGate(p); err != nil {
		return nil, err
	}
	return m.handCopy(), nil
}

// HandString returns the hand as a digit string ("13466"), or an empty
// string before the initial roll. Subject to the turn gate.
func (m *Match) HandString(p participant.Participant) (string, error) {
	if err := m.turnGate(p); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, face := range m.hand {
		sb.WriteString(strconv.Itoa(face))
	}
	return sb.String(), nil
}

// ScoresPlayer returns the scoreboard view for one participant, delegated
// to the scoring engine.
func (m *Match) ScoresPlayer(p participant.Participant) (string, error) {
	if m.engine == nil {
		return "", ErrMatchNotStarted
	}
	return m.engine.RenderPlayer(p), nil
}

// ScoresAll returns the full scoreboard, delegated to the scoring engine.
func (m *Match) ScoresAll() (string, error) {
	if m.engine == nil {
		return "", ErrMatchNotStarted
	}
	return m.engine.RenderAll(), nil
}

// ScoresFinal returns the final standings, delegated to the scoring engine.
func (m *Match) ScoresFinal() (string, error) {
	if m.engine == nil {
		return "", ErrMatchNotStarted
	}
	return m.engine.RenderFinal(), nil
}

func (m *Match) handCopy() []int {
	if m.hand == nil {
		return nil
	}
	hand := make([]int, len(m.hand))
	copy(hand, m.hand)
	return hand
}
