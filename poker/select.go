package poker

import (
	"errors"
	"slices"
)

// ErrNoCards is returned by Select when given an empty card sequence
var ErrNoCards = errors.New("cannot select a hand from no cards")

// detector inspects a hand sorted ascending by rank and reports whether it
// matches one specific category.
type detector func(sorted []Card) (Hand, bool)

// detectors are tried in descending category priority; the first match wins.
// Hands that match none fall back to the high card of the original input.
var detectors = []detector{
	detectStraightFlush,
	detectFullHouse,
	detectFlush,
	detectStraight,
	detectGroups,
}

// Select classifies the cards into the best-matching hand. The input is not
// modified; hand size is the caller's responsibility (5 cards for standard
// poker). Only an empty input is an error.
//
// Straights are detected by rank adjacency with Ace fixed at 14, so the
// ace-low wheel (A-2-3-4-5) is not recognized as a straight.
func Select(cards []Card) (Hand, error) {
	if len(cards) == 0 {
		return Hand{}, ErrNoCards
	}

	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, Card.Compare)

	for _, detect := range detectors {
		if hand, ok := detect(sorted); ok {
			return hand, nil
		}
	}

	return NewHighCard(highestCard(cards)), nil
}

func detectStraightFlush(sorted []Card) (Hand, bool) {
	if sameSuit(sorted) && consecutive(sorted) {
		return NewStraightFlush(sorted[len(sorted)-1].Rank), true
	}
	return Hand{}, false
}

func detectFullHouse(sorted []Card) (Hand, bool) {
	var pair, triplet Rank
	var hasPair, hasTriplet bool
	for rank, n := range rankCounts(sorted) {
		switch n {
		case 2:
			pair, hasPair = rank, true
		case 3:
			triplet, hasTriplet = rank, true
		}
	}
	if hasPair && hasTriplet {
		return NewFullHouse(pair, triplet), true
	}
	return Hand{}, false
}

func detectFlush(sorted []Card) (Hand, bool) {
	if sameSuit(sorted) {
		return NewFlush(sorted[len(sorted)-1]), true
	}
	return Hand{}, false
}

func detectStraight(sorted []Card) (Hand, bool) {
	if consecutive(sorted) {
		return NewStraight(sorted[len(sorted)-1].Rank), true
	}
	return Hand{}, false
}

// detectGroups covers the repeated-rank categories: two pairs outrank a
// single pair, otherwise the largest group decides. Yields no match when
// every rank appears once.
func detectGroups(sorted []Card) (Hand, bool) {
	var pairs []Rank
	var bestRank Rank
	bestCount := 0
	for rank, n := range rankCounts(sorted) {
		if n == 2 {
			pairs = append(pairs, rank)
		}
		if n > bestCount || (n == bestCount && rank > bestRank) {
			bestRank, bestCount = rank, n
		}
	}

	if len(pairs) >= 2 {
		slices.Sort(pairs)
		return NewTwoPairs(pairs[len(pairs)-1], pairs[len(pairs)-2]), true
	}

	switch bestCount {
	case 2:
		return NewPair(bestRank), true
	case 3:
		return NewThreeOfAKind(bestRank), true
	case 4:
		return NewFourOfAKind(bestRank), true
	}
	return Hand{}, false
}

// sameSuit reports whether every card shares one suit
func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// consecutive reports whether each adjacent pair of the rank-sorted cards
// differs by exactly one rank step. Vacuously true for fewer than two cards.
func consecutive(sorted []Card) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

func rankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

func highestCard(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Compare(best) > 0 {
			best = c
		}
	}
	return best
}
