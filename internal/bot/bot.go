// Package bot implements a balanced heuristic hold'em policy.
//
// Preflop it plays premium pairs and strong broadway hands aggressively and
// widens its range in late position. Postflop it bets strong made hands for
// value, defends a pair when the price is right, and semi-bluffs strong
// draws. Raise sizes are pot-based and always respect the legal actions and
// betting bounds it is handed.
package bot

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/balancedbot/internal/deck"
	"github.com/lox/balancedbot/internal/game"
)

// Aggression stays within these bounds no matter how a tournament goes.
const (
	aggressionFloor = 0.3
	aggressionCap   = 0.8

	aggressionWinStep  = 0.01
	aggressionLossStep = 0.005
)

// Policy is a decision-making policy for a single participant. One instance
// serves one seat for a whole tournament; the engine drives it sequentially
// so no locking is needed.
type Policy struct {
	name   string
	logger *log.Logger
	tuning Tuning

	aggression        float64
	lastRaisedPreflop bool
	handsPlayed       int
	handsWon          int

	opponents     map[string]*OpponentRecord
	participants  []string
	startingChips int
}

// Option configures a Policy.
type Option func(*Policy)

// WithTuning replaces the default strategy tuning.
func WithTuning(t Tuning) Option {
	return func(p *Policy) {
		p.tuning = t
	}
}

// WithPreflopRaise marks the policy as the preflop aggressor, enabling
// continuation bets on the next postflop decision. Used by offline analysis;
// live play tracks this from the policy's own preflop decisions.
func WithPreflopRaise() Option {
	return func(p *Policy) {
		p.lastRaisedPreflop = true
	}
}

// New creates a policy for the named participant.
func New(name string, logger *log.Logger, opts ...Option) *Policy {
	p := &Policy{
		name:       name,
		logger:     logger.WithPrefix("policy"),
		tuning:     DefaultTuning(),
		aggression: 0.6,
		opponents:  make(map[string]*OpponentRecord),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the participant this policy decides for.
func (p *Policy) Name() string { return p.name }

// Aggression returns the current aggression tuning parameter.
func (p *Policy) Aggression() float64 { return p.aggression }

// HandsPlayed returns the number of completed hands this tournament.
func (p *Policy) HandsPlayed() int { return p.handsPlayed }

// HandsWon returns the number of hands won this tournament.
func (p *Policy) HandsWon() int { return p.handsWon }

// WinRate returns the fraction of completed hands won.
func (p *Policy) WinRate() float64 {
	if p.handsPlayed == 0 {
		return 0
	}
	return float64(p.handsWon) / float64(p.handsPlayed)
}

// GetAction is the main decision entry point. It always returns a legal
// action; with no legal actions it folds.
func (p *Policy) GetAction(state *game.State, holeCards []deck.Card, legal []game.Action, minBet, maxBet int) (game.Action, int) {
	if len(legal) == 0 {
		return game.Fold, 0
	}

	var action game.Action
	var amount int

	if state.IsPreflop() {
		action, amount = p.preflop(state, holeCards, legal, minBet, maxBet)
		// Remember whether we took the lead, to drive continuation bets
		p.lastRaisedPreflop = action == game.Raise
	} else {
		action, amount = p.postflop(state, holeCards, legal, minBet, maxBet)
	}

	p.logger.Debug("decision",
		"round", state.Round,
		"pot", state.Pot,
		"currentBet", state.CurrentBet,
		"action", action.String(),
		"amount", amount,
		"aggression", p.aggression)

	return action, amount
}

// HandComplete updates tournament counters, aggression, and opponent stats.
func (p *Policy) HandComplete(state *game.State, result game.HandResult) {
	p.handsPlayed++
	if slices.Contains(result.Winners, p.name) {
		p.handsWon++
		p.aggression = math.Min(aggressionCap, p.aggression+aggressionWinStep)
	} else {
		p.aggression = math.Max(aggressionFloor, p.aggression-aggressionLossStep)
	}

	p.updateOpponents(state, result)
}

// TournamentStart resets counters and sets the base aggression for the
// table size: tighter at full tables, looser short-handed.
func (p *Policy) TournamentStart(players []string, startingChips int) {
	p.participants = slices.Clone(players)
	p.startingChips = startingChips
	p.handsPlayed = 0
	p.handsWon = 0

	switch {
	case len(players) <= 4:
		p.aggression = 0.65
	case len(players) >= 8:
		p.aggression = 0.45
	default:
		p.aggression = 0.55
	}

	p.logger.Debug("tournament start",
		"players", len(players),
		"startingChips", startingChips,
		"aggression", p.aggression)
}

// chooseRaiseAmount picks a total bet of factor x pot, clamped to
// [minBet, maxBet]. The engine expects the total bet amount, not the
// increment.
func (p *Policy) chooseRaiseAmount(state *game.State, minBet, maxBet int, factor float64) int {
	desired := int(float64(state.Pot) * factor)
	amount := max(minBet, desired)
	amount = min(amount, maxBet)
	if amount < minBet {
		return minBet
	}
	return amount
}

// fallback picks the first legal of check, call, fold.
func fallback(legal []game.Action) (game.Action, int) {
	if slices.Contains(legal, game.Check) {
		return game.Check, 0
	}
	if slices.Contains(legal, game.Call) {
		return game.Call, 0
	}
	return game.Fold, 0
}

var _ game.Bot = (*Policy)(nil)
