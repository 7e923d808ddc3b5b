// Package game defines the contracts between a decision policy and the
// engine that drives it: the table snapshot a policy receives, the actions
// it may return, and the betting arithmetic helpers both sides agree on.
// The engine itself lives outside this module.
package game

import "github.com/lox/balancedbot/internal/deck"

// Betting rounds
const (
	RoundPreflop  = "preflop"
	RoundFlop     = "flop"
	RoundTurn     = "turn"
	RoundRiver    = "river"
	RoundShowdown = "showdown"
)

// freePotOdds is returned when there is nothing to call.
// Callers should branch on AmountOwed first; the sentinel just keeps
// every "odds >= threshold" comparison true for a free option.
const freePotOdds = 1000.0

// State is the engine's snapshot of the table at a decision point.
// It is immutable for the duration of one decision.
type State struct {
	Round      string
	CurrentBet int
	BigBlind   int
	Pot        int
	Bets       map[string]int // chips contributed this round, by player name
	Community  []deck.Card
	ToAct      []string // players still to act this round, in acting order
}

// PositionInfo describes where a player sits in the remaining acting order.
type PositionInfo struct {
	IsLast       bool
	PlayersAfter int
}

// Position returns position info for the named player. An unknown player
// reports zero players after it, which callers treat as acting late.
func (s *State) Position(name string) PositionInfo {
	for i, p := range s.ToAct {
		if p == name {
			return PositionInfo{
				IsLast:       i == len(s.ToAct)-1,
				PlayersAfter: len(s.ToAct) - 1 - i,
			}
		}
	}
	return PositionInfo{}
}

// AmountOwed returns how much the named player must add to match the
// current bet. Never negative.
func (s *State) AmountOwed(name string) int {
	owed := s.CurrentBet - s.Bets[name]
	if owed < 0 {
		return 0
	}
	return owed
}

// IsPreflop returns true before any community cards are dealt.
func (s *State) IsPreflop() bool {
	return s.Round == RoundPreflop
}

// PotOdds returns the ratio of pot size to the amount required to continue.
func PotOdds(pot, toCall int) float64 {
	if toCall <= 0 {
		return freePotOdds
	}
	return float64(pot) / float64(toCall)
}

// HandResult reports the outcome of a completed hand.
type HandResult struct {
	Winners []string
}

// Bot is the decision-making contract the engine drives. One Bot instance
// serves one participant; the engine guarantees calls are sequential.
type Bot interface {
	// GetAction returns one legal action and, for raises, the total bet
	// amount within [minBet, maxBet].
	GetAction(state *State, holeCards []deck.Card, legal []Action, minBet, maxBet int) (Action, int)

	// HandComplete notifies the bot that a hand finished.
	HandComplete(state *State, result HandResult)

	// TournamentStart notifies the bot that a new tournament began.
	TournamentStart(players []string, startingChips int)
}
