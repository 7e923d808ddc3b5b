// Package evaluator adapts the paulhankin/poker hand evaluator to the
// category/ordinal contract the decision policy consumes. Ordering and
// tiebreaks come from the library; this package only picks the best
// five-card subset and labels it.
package evaluator

import (
	"fmt"
	"sort"

	poker "github.com/paulhankin/poker"

	"github.com/lox/balancedbot/internal/deck"
)

// HandType enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandType int

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the readable name of the hand type
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}

// Result describes the best five-card hand found in a set of cards.
type Result struct {
	Type  HandType
	Score int16 // library score, larger is stronger; breaks ties within a type
	Best  []deck.Card
}

// BestHand evaluates 5 to 7 cards and returns the strongest five-card hand.
func BestHand(cards []deck.Card) (Result, error) {
	if len(cards) < 5 {
		return Result{}, fmt.Errorf("need at least 5 cards, got %d", len(cards))
	}
	if len(cards) > 7 {
		return Result{}, fmt.Errorf("at most 7 cards supported, got %d", len(cards))
	}

	libCards := make([]poker.Card, len(cards))
	for i, c := range cards {
		libCards[i] = toLib(c)
	}

	var (
		bestScore int16
		bestIdx   [5]int
		first     = true
		choose    [5]int
		five      [5]poker.Card
	)

	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = libCards[choose[i]]
			}
			score := poker.Eval5(&five)
			if first || score > bestScore {
				first = false
				bestScore = score
				bestIdx = choose
			}
			return
		}
		for i := start; i <= len(libCards)-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)

	best := make([]deck.Card, 5)
	for i, idx := range bestIdx {
		best[i] = cards[idx]
	}

	return Result{
		Type:  classify(best),
		Score: bestScore,
		Best:  best,
	}, nil
}

// toLib converts a card to the library representation.
// Library ranks run 1..13 with Ace mapped to 1.
func toLib(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}

	var r poker.Rank
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}

	card, _ := poker.MakeCard(s, r)
	return card
}

// classify labels a five-card hand. The ordering came from the library;
// this only names the category of an already-chosen hand.
func classify(five []deck.Card) HandType {
	flush := true
	counts := make(map[deck.Rank]int, 5)
	ranks := make([]int, 0, 5)
	for _, c := range five {
		if c.Suit != five[0].Suit {
			flush = false
		}
		if counts[c.Rank] == 0 {
			ranks = append(ranks, int(c.Rank))
		}
		counts[c.Rank]++
	}
	sort.Ints(ranks)

	straight := false
	if len(ranks) == 5 {
		straight = ranks[4]-ranks[0] == 4
		// wheel: A-2-3-4-5
		if !straight && ranks[4] == int(deck.Ace) && ranks[3] == int(deck.Five) {
			straight = ranks[0] == int(deck.Two)
		}
	}

	var pairs, trips, quads int
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	switch {
	case straight && flush:
		return StraightFlush
	case quads == 1:
		return FourOfAKind
	case trips == 1 && pairs == 1:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return Pair
	default:
		return HighCard
	}
}
