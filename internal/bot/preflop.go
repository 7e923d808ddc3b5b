package bot

import (
	"math"
	"slices"

	"github.com/lox/balancedbot/internal/deck"
	"github.com/lox/balancedbot/internal/game"
)

// Preflop confidence signal weights. The base signal is the normalized
// average rank; the bonuses stack.
const (
	baseRankWeight  = 0.4
	pocketPairBonus = 0.3
	kingHighBonus   = 0.18
	aceHighBonus    = 0.12
	connectorBonus  = 0.15
	oneGapBonus     = 0.08
	suitedBonus     = 0.12
)

// PreflopConfidence scores two hole cards into [0, 1]. Pocket pairs, high
// cards, suitedness and connectedness all add confidence.
func PreflopConfidence(holeCards []deck.Card) float64 {
	if len(holeCards) != 2 {
		return 0
	}

	r1 := float64(holeCards[0].Rank)
	r2 := float64(holeCards[1].Rank)
	suited := holeCards[0].Suit == holeCards[1].Suit

	high := math.Max(r1, r2)
	highCardBonus := 0.0
	if high >= float64(deck.King) {
		highCardBonus += kingHighBonus
	}
	if high == float64(deck.Ace) {
		highCardBonus += aceHighBonus
	}

	pairBonus := 0.0
	if r1 == r2 {
		pairBonus = pocketPairBonus
	}

	distance := math.Abs(r1 - r2)
	gapBonus := 0.0
	switch {
	case distance <= 1:
		gapBonus = connectorBonus
	case distance == 2:
		gapBonus = oneGapBonus
	}

	suitBonus := 0.0
	if suited {
		suitBonus = suitedBonus
	}

	base := (r1 + r2) / (2.0 * float64(deck.Ace))
	score := base*baseRankWeight + pairBonus + gapBonus + suitBonus + highCardBonus
	return math.Min(1.0, score)
}

// preflop decides the opening round. Strong hands raise, playable hands
// see cheap flops, the rest check or fold.
func (p *Policy) preflop(state *game.State, holeCards []deck.Card, legal []game.Action, minBet, maxBet int) (game.Action, int) {
	if len(holeCards) != 2 {
		return game.Fold, 0
	}

	confidence := PreflopConfidence(holeCards)

	pos := state.Position(p.name)
	late := pos.IsLast || pos.PlayersAfter <= 1
	toCall := state.AmountOwed(p.name)

	// Strong hands: raise aggressively
	if confidence >= p.tuning.RaiseConfidence {
		if slices.Contains(legal, game.Raise) {
			factor := p.tuning.OpenFactor
			if late {
				factor = p.tuning.LateOpenFactor
			}
			return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, factor)
		}
		if slices.Contains(legal, game.Call) && toCall <= state.BigBlind*2 {
			return game.Call, 0
		}
	}

	// Medium strength: play in late position or call at a good price
	if confidence >= p.tuning.PlayConfidence {
		if toCall == 0 {
			if slices.Contains(legal, game.Check) {
				return game.Check, 0
			}
			if late && slices.Contains(legal, game.Raise) {
				return game.Raise, p.chooseRaiseAmount(state, minBet, maxBet, p.tuning.LimpRaiseFactor)
			}
		} else if game.PotOdds(state.Pot, toCall) >= p.tuning.PreflopCallOdds &&
			slices.Contains(legal, game.Call) {
			return game.Call, 0
		}
	}

	if slices.Contains(legal, game.Check) {
		return game.Check, 0
	}
	return game.Fold, 0
}
