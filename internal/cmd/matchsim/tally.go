package matchsim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/game/scoring"
	apperrors "github.com/louisbranch/dicetable/internal/platform/errors"
)

// tally is a stand-in scoring engine for simulations: every round scores
// the sum of the hand, and the scorecard is complete when each roster
// member has committed every round. The real category engine lives outside
// this module.
type tally struct {
	roster    []participant.Participant
	rounds    []scoring.Move
	committed map[string]map[scoring.Move]int
}

func newTally(rounds int) *tally {
	moves := make([]scoring.Move, rounds)
	for i := range moves {
		moves[i] = scoring.Move(fmt.Sprintf("round-%d", i+1))
	}
	return &tally{
		rounds:    moves,
		committed: make(map[string]map[scoring.Move]int),
	}
}

// factory fits the scoring.Factory signature.
func (e *tally) factory(cfg scoring.Config) (scoring.Engine, error) {
	e.roster = cfg.Roster
	return e, nil
}

func (e *tally) LegalMoves(p participant.Participant, hand []int) []scoring.ScoredMove {
	score := sum(hand)
	moves := make([]scoring.ScoredMove, 0, len(e.rounds))
	for _, round := range e.rounds {
		if _, used := e.committed[p.ID()][round]; used {
			continue
		}
		moves = append(moves, scoring.ScoredMove{Move: round, Score: score})
	}
	return moves
}

func (e *tally) CommitMove(p participant.Participant, hand []int, move scoring.Move) (int, error) {
	if _, used := e.committed[p.ID()][move]; used {
		return 0, apperrors.New(apperrors.CodeMoveIllegal, fmt.Sprintf("round %q already committed", move))
	}
	known := false
	for _, round := range e.rounds {
		if round == move {
			known = true
			break
		}
	}
	if !known {
		return 0, apperrors.New(apperrors.CodeMoveIllegal, fmt.Sprintf("unknown round %q", move))
	}

	if e.committed[p.ID()] == nil {
		e.committed[p.ID()] = make(map[scoring.Move]int)
	}
	score := sum(hand)
	e.committed[p.ID()][move] = score
	return score, nil
}

func (e *tally) IsComplete() bool {
	for _, p := range e.roster {
		if len(e.committed[p.ID()]) < len(e.rounds) {
			return false
		}
	}
	return len(e.roster) > 0
}

func (e *tally) RenderPlayer(p participant.Participant) string {
	return fmt.Sprintf("%s=%d", p.Label(), e.total(p))
}

func (e *tally) RenderAll() string {
	lines := make([]string, 0, len(e.roster))
	for _, p := range e.roster {
		lines = append(lines, e.RenderPlayer(p))
	}
	return strings.Join(lines, " ")
}

func (e *tally) RenderFinal() string {
	standings := make([]participant.Participant, len(e.roster))
	copy(standings, e.roster)
	sort.SliceStable(standings, func(i, j int) bool {
		return e.total(standings[i]) > e.total(standings[j])
	})

	lines := make([]string, 0, len(standings))
	for rank, p := range standings {
		lines = append(lines, fmt.Sprintf("%d.%s=%d", rank+1, p.Label(), e.total(p)))
	}
	return strings.Join(lines, " ")
}

func (e *tally) total(p participant.Participant) int {
	total := 0
	for _, score := range e.committed[p.ID()] {
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
