package bot

import (
	"math"
	"slices"

	"github.com/lox/balancedbot/internal/deck"
	"github.com/lox/balancedbot/internal/evaluator"
	"github.com/lox/balancedbot/internal/game"
)

// postflop decides every round after the flop is dealt. The ladder runs
// continuation bet, strong made hand, medium made hand, drawing hand,
// then the check/call/fold fallback.
func (p *Policy) postflop(state *game.State, holeCards []deck.Card, legal []game.Action, minBet, maxBet int) (game.Action, int) {
	allCards := make([]deck.Card, 0, len(holeCards)+len(state.Community))
	allCards = append(allCards, holeCards...)
	allCards = append(allCards, state.Community...)

	result, err := evaluator.BestHand(allCards)
	if err != nil {
		p.logger.Warn("hand evaluation failed", "err", err)
		return fallback(legal)
	}
	handType := result.Type

	// If we raised preflop and nobody has bet yet, keep the pressure on
	// with at least a pair or a strong draw
	if p.lastRaisedPreflop && state.CurrentBet == 0 && slices.Contains(legal, game.Raise) {
		if handType >= evaluator.Pair || HasStrongDraw(allCards) {
			return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, p.tuning.ContinuationFactor)
		}
	}

	// Strong made hands (two pair or better): be aggressive
	if handType >= evaluator.TwoPair {
		if slices.Contains(legal, game.Raise) {
			return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, p.tuning.ValueFactor)
		}
		return fallback(legal)
	}

	// A pair: defend when the price is right, occasionally raise for value
	if handType >= evaluator.Pair {
		if slices.Contains(legal, game.Call) {
			toCall := state.AmountOwed(p.name)
			if game.PotOdds(state.Pot, toCall) >= p.tuning.DefendOdds || toCall == 0 {
				if slices.Contains(legal, game.Raise) && p.shouldRaiseForValue(state.Pot, handType) {
					return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, p.tuning.ValueFactor)
				}
				return game.Call, 0
			}
		}
		return fallback(legal)
	}

	// Drawing hands: semi-bluff a free spot, otherwise respect pot odds
	if HasStrongDraw(allCards) {
		toCall := state.AmountOwed(p.name)
		if toCall == 0 && slices.Contains(legal, game.Raise) {
			return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, p.tuning.SemiBluffFactor)
		}
		if game.PotOdds(state.Pot, toCall) >= p.tuning.DrawOdds && slices.Contains(legal, game.Call) {
			return game.Call, 0
		}
		return fallback(legal)
	}

	return fallback(legal)
}

// shouldRaiseForValue decides whether to turn a calling hand into a raise.
// With at least a pair the pot has to be worth fighting for relative to
// aggression. The weaker-hand branch is unreachable from postflop, whose
// caller already requires a pair; it is kept for the aggression-driven
// bluff behavior it encodes.
func (p *Policy) shouldRaiseForValue(pot int, handType evaluator.HandType) bool {
	if handType >= evaluator.Pair {
		return float64(pot) > 2*math.Max(1, p.aggression*10)
	}
	return p.aggression > 0.6
}
