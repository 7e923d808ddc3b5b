package bot

import (
	"slices"

	"github.com/lox/balancedbot/internal/game"
)

// OpponentRecord tracks the observed behavior of one other participant.
type OpponentRecord struct {
	Seen   int // hands this opponent was observed in
	Raised int // hands where their final bet exceeded two big blinds
	Won    int // hands they won
}

// RaiseRate returns the fraction of observed hands this opponent raised.
func (r OpponentRecord) RaiseRate() float64 {
	if r.Seen == 0 {
		return 0
	}
	return float64(r.Raised) / float64(r.Seen)
}

// OpponentStats returns the record for a named opponent, if one exists.
func (p *Policy) OpponentStats(name string) (OpponentRecord, bool) {
	rec, ok := p.opponents[name]
	if !ok {
		return OpponentRecord{}, false
	}
	return *rec, true
}

// updateOpponents is best-effort bookkeeping from the final bets of a
// completed hand. Malformed entries are skipped rather than aborting the
// lifecycle hook.
func (p *Policy) updateOpponents(state *game.State, result game.HandResult) {
	if state == nil || state.Bets == nil {
		return
	}

	for player, bet := range state.Bets {
		if player == "" || player == p.name {
			continue
		}

		rec, ok := p.opponents[player]
		if !ok {
			rec = &OpponentRecord{}
			p.opponents[player] = rec
		}

		rec.Seen++
		if bet > state.BigBlind*2 {
			rec.Raised++
		}
		if slices.Contains(result.Winners, player) {
			rec.Won++
		}
	}
}
