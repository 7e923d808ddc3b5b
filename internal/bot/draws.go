package bot

import (
	"sort"

	"github.com/lox/balancedbot/internal/deck"
)

// HasStrongDraw reports whether the visible cards hold a flush draw or an
// open-ended straight draw.
//
// The straight check is an approximation: it scans contiguous 4-rank
// windows for an exact span of 3, which misses gutshots and some wheel
// shapes. The two ace-low sets are special-cased. This looseness is part
// of the policy's observable behavior, not something to tighten.
func HasStrongDraw(cards []deck.Card) bool {
	// Flush draw: four to a suit
	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		suitCounts[c.Suit]++
		if suitCounts[c.Suit] >= 4 {
			return true
		}
	}

	// Distinct ranks, ascending
	seen := make(map[deck.Rank]bool)
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		if !seen[c.Rank] {
			seen[c.Rank] = true
			ranks = append(ranks, int(c.Rank))
		}
	}
	sort.Ints(ranks)

	for i := 0; i+3 < len(ranks); i++ {
		if ranks[i+3]-ranks[i] == 3 {
			return true
		}
	}

	// Ace-low considerations
	if seen[deck.Two] && seen[deck.Three] && seen[deck.Four] &&
		(seen[deck.Ace] || seen[deck.Five]) {
		return true
	}

	return false
}
