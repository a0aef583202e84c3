// Package matchsim plays complete bot matches against the game core. It is
// a development tool for smoke-testing the turn protocol end to end.
package matchsim

import (
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/dicetable/internal/game/dice"
	"github.com/louisbranch/dicetable/internal/game/match"
	"github.com/louisbranch/dicetable/internal/game/participant"
	"github.com/louisbranch/dicetable/internal/platform/id"
)

// Config holds simulator configuration, loaded from the environment.
type Config struct {
	// Matches is how many matches to play.
	Matches int `env:"DICETABLE_SIM_MATCHES" envDefault:"1"`
	// Players is the roster size per match.
	Players int `env:"DICETABLE_SIM_PLAYERS" envDefault:"2"`
	// Variant selects the rule set: standard, forced or maxi.
	Variant string `env:"DICETABLE_SIM_VARIANT" envDefault:"standard"`
	// Rounds is how many scoring categories each match plays.
	Rounds int `env:"DICETABLE_SIM_ROUNDS" envDefault:"3"`
	// Seed fixes the dice source for reproducible runs; 0 draws a seed.
	Seed int64 `env:"DICETABLE_SIM_SEED" envDefault:"0"`
	// Verbose logs every turn.
	Verbose bool `env:"DICETABLE_SIM_VERBOSE" envDefault:"false"`
}

// Run plays the configured matches and writes one summary line per match.
func Run(cfg Config, out io.Writer) error {
	if cfg.Matches < 1 || cfg.Players < 1 || cfg.Rounds < 1 {
		return fmt.Errorf("matches, players and rounds must be positive")
	}
	variant, err := match.VariantFromLabel(cfg.Variant)
	if err != nil {
		return fmt.Errorf("parse variant: %w", err)
	}
	rules := match.Rules{
		Forced: variant == match.VariantForced,
		Maxi:   variant == match.VariantMaxi,
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = dice.NewSeed()
		if err != nil {
			return fmt.Errorf("draw seed: %w", err)
		}
	}
	log.Printf("simulation starting matches=%d players=%d variant=%s seed=%d", cfg.Matches, cfg.Players, variant, seed)

	source := dice.NewSource(seed)
	for i := 0; i < cfg.Matches; i++ {
		if err := playMatch(cfg, rules, source, out); err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}
	}
	return nil
}

// playMatch drives one match from roster formation to completion.
func playMatch(cfg Config, rules match.Rules, source dice.Source, out io.Writer) error {
	matchID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("generate match id: %w", err)
	}

	roster := make([]participant.Participant, cfg.Players)
	for i := range roster {
		p, err := participant.New(fmt.Sprintf("bot-%d", i+1), fmt.Sprintf("Bot %d", i+1))
		if err != nil {
			return fmt.Errorf("build participant: %w", err)
		}
		roster[i] = p
	}

	engine := newTally(cfg.Rounds)
	m, err := match.New(matchID, roster[0], rules, source, engine.factory, nil)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	for _, p := range roster[1:] {
		if err := m.Join(p); err != nil {
			return fmt.Errorf("join %s: %w", p.ID(), err)
		}
	}
	if err := m.Start(roster[0]); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	for m.IsInProgress() {
		if err := playTurn(cfg, m); err != nil {
			return err
		}
	}
	if !m.IsCompleted() {
		return fmt.Errorf("match %s stopped without completing", matchID)
	}

	final, err := m.ScoresFinal()
	if err != nil {
		return fmt.Errorf("final scores: %w", err)
	}
	fmt.Fprintf(out, "match %s variant=%s %s\n", matchID, m.Variant(), final)
	return nil
}

// playTurn rolls, rerolls every low die once through the pool, and commits
// the best legal move.
func playTurn(cfg Config, m *match.Match) error {
	current, ok := m.CurrentPlayer()
	if !ok {
		return fmt.Errorf("no current player while in progress")
	}

	hand, err := m.Roll(current)
	if err != nil {
		return fmt.Errorf("roll: %w", err)
	}

	// Queue every die under 4 and reroll the batch once.
	for position, face := range hand {
		if face < 4 {
			if err := m.AddPool(current, position+1); err != nil {
				return fmt.Errorf("pool add: %w", err)
			}
		}
	}
	if len(m.Pool()) > 0 {
		if hand, err = m.RerollPooled(current); err != nil {
			return fmt.Errorf("reroll pooled: %w", err)
		}
	}

	moves, err := m.LegalMoves(current)
	if err != nil {
		return fmt.Errorf("legal moves: %w", err)
	}
	if len(moves) == 0 {
		return fmt.Errorf("no legal moves for %s", current.ID())
	}

	score, err := m.Commit(current, moves[0].Move)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if cfg.Verbose {
		log.Printf("turn committed match_id=%s player=%s hand=%v move=%s score=%d", m.ID(), current.ID(), hand, moves[0].Move, score)
	}
	return nil
}
