package match

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/louisbranch/dicetable/internal/game/participant"
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

// The reroll pool stages die positions for one batched reroll. Pool
// membership never consumes reroll budget; only RerollPooled does.

// ClearPool empties the reroll pool. Clearing an empty pool is a no-op.
func (m *Match) ClearPool(p participant.Participant) error {
	if err := m.turnGate(p); err != nil {
		return err
	}
	m.pool = make(map[int]struct{})
	return nil
}

// SelectAllPool queues every die position for reroll.
func (m *Match) SelectAllPool(p participant.Participant) error {
	if err := m.turnGate(p); err != nil {
		return err
	}
	pool := make(map[int]struct{}, m.rules.DiceCount())
	for position := 1; position <= m.rules.DiceCount(); position++ {
		pool[position] = struct{}{}
	}
	m.pool = pool
	return nil
}

// TogglePool queues the position if absent and removes it if present.
func (m *Match) TogglePool(p participant.Participant, position int) error {
	if err := m.poolCheck(p, position); err != nil {
		return err
	}
	if _, queued := m.pool[position]; queued {
		delete(m.pool, position)
	} else {
		m.pool[position] = struct{}{}
	}
	return nil
}

// AddPool queues the position; queueing it twice is an error.
func (m *Match) AddPool(p participant.Participant, position int) error {
	if err := m.poolCheck(p, position); err != nil {
		return err
	}
	if _, queued := m.pool[position]; queued {
		return ErrAlreadyPooled
	}
	m.pool[position] = struct{}{}
	return nil
}

// DelPool removes the position; removing an absent position is an error.
func (m *Match) DelPool(p participant.Participant, position int) error {
	if err := m.poolCheck(p, position); err != nil {
		return err
	}
	if _, queued := m.pool[position]; !queued {
		return ErrNotPooled
	}
	delete(m.pool, position)
	return nil
}

// RerollPooled executes one reroll for every queued position and clears
// the pool. It fails like Reroll when the pool is empty or the budget is
// exhausted, leaving the pool intact.
func (m *Match) RerollPooled(p participant.Participant) ([]int, error) {
	hand, err := m.Reroll(p, m.Pool())
	if err != nil {
		return nil, err
	}
	m.pool = make(map[int]struct{})
	return hand, nil
}

// Pool returns the queued positions in ascending order.
func (m *Match) Pool() []int {
	positions := make([]int, 0, len(m.pool))
	for position := range m.pool {
		positions = append(positions, position)
	}
	sort.Ints(positions)
	return positions
}

// poolCheck validates a single-position pool mutation: same preconditions
// as a reroll selection, without consuming budget.
func (m *Match) poolCheck(p participant.Participant, position int) error {
	if err := m.turnGate(p); err != nil {
		return err
	}
	if m.hand == nil {
		return ErrHandMissing
	}
	diceCount := m.rules.DiceCount()
	if position < 1 || position > diceCount {
		return apperrors.WithMetadata(apperrors.CodeSelectionPositionOutOfRange,
			fmt.Sprintf("die positions must be in range 1-%d", diceCount),
			map[string]string{
				"Position":  strconv.Itoa(position),
				"DiceCount": strconv.Itoa(diceCount),
			})
	}
	return nil
}
