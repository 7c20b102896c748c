package poker

import "fmt"

// Category enumerates the hand categories ordered from weakest to strongest.
// The declaration order is the cross-category precedence: any hand of a higher
// category beats any hand of a lower one regardless of tie-break data.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two pairs"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		return "Unknown"
	}
}

// Hand is a classified, comparable hand. It carries its category plus exactly
// the payload needed to break ties against another hand of the same category:
// a carried card for HighCard and Flush, a single rank for Pair, ThreeOfAKind,
// Straight, FourOfAKind and StraightFlush, and a rank pair for TwoPairs and
// FullHouse. Hands are immutable; Select is the usual way to obtain one.
type Hand struct {
	category Category
	card     Card // HighCard, Flush
	rank     Rank // single-rank categories; TwoPairs high pair; FullHouse triplet
	second   Rank // TwoPairs low pair; FullHouse pair
}

// NewHighCard creates a high-card hand holding its best card
func NewHighCard(card Card) Hand {
	return Hand{category: HighCard, card: card}
}

// NewPair creates a pair hand
func NewPair(rank Rank) Hand {
	return Hand{category: Pair, rank: rank}
}

// NewTwoPairs creates a two-pair hand from the higher and lower pair ranks
func NewTwoPairs(high, low Rank) Hand {
	return Hand{category: TwoPairs, rank: high, second: low}
}

// NewThreeOfAKind creates a three-of-a-kind hand
func NewThreeOfAKind(rank Rank) Hand {
	return Hand{category: ThreeOfAKind, rank: rank}
}

// NewStraight creates a straight holding the rank of its highest card
func NewStraight(high Rank) Hand {
	return Hand{category: Straight, rank: high}
}

// NewFlush creates a flush holding its highest card
func NewFlush(card Card) Hand {
	return Hand{category: Flush, card: card}
}

// NewFullHouse creates a full house from the pair rank and the triplet rank
func NewFullHouse(pair, triplet Rank) Hand {
	return Hand{category: FullHouse, rank: triplet, second: pair}
}

// NewFourOfAKind creates a four-of-a-kind hand
func NewFourOfAKind(rank Rank) Hand {
	return Hand{category: FourOfAKind, rank: rank}
}

// NewStraightFlush creates a straight flush holding the rank of its highest card
func NewStraightFlush(high Rank) Hand {
	return Hand{category: StraightFlush, rank: high}
}

// Category returns the hand's category
func (h Hand) Category() Category {
	return h.category
}

// Compare compares two hands and returns:
//
//	-1 if h is weaker than other
//	 0 if the hands tie
//	 1 if h is stronger than other
//
// Category decides first; only hands of the same category compare their
// tie-break payload. A full house is decided by its triplet rank alone.
func (h Hand) Compare(other Hand) int {
	if h.category != other.category {
		if h.category < other.category {
			return -1
		}
		return 1
	}

	diff := 0
	switch h.category {
	case HighCard, Flush:
		diff = h.card.Compare(other.card)
	case Pair, ThreeOfAKind, Straight, FourOfAKind, StraightFlush:
		diff = h.rank.Compare(other.rank)
	case TwoPairs:
		diff = h.rank.Compare(other.rank)
		if diff == 0 {
			diff = h.second.Compare(other.second)
		}
	case FullHouse:
		diff = h.rank.Compare(other.rank)
	default:
		panic(fmt.Sprintf("unknown hand category: %d", h.category))
	}

	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// Beats returns true if this hand beats the other hand
func (h Hand) Beats(other Hand) bool {
	return h.Compare(other) > 0
}

// Ties returns true if both hands are equal in strength
func (h Hand) Ties(other Hand) bool {
	return h.Compare(other) == 0
}

// String returns the human-readable hand description, e.g.
// "Full house: King over Ace" or "High card: Ace of spades".
func (h Hand) String() string {
	switch h.category {
	case HighCard:
		return fmt.Sprintf("High card: %s", h.card.Description())
	case Pair:
		return fmt.Sprintf("Pair of %ss", h.rank.Name())
	case TwoPairs:
		// lower pair is worded first
		return fmt.Sprintf("Pair of %ss and pair of %ss", h.second.Name(), h.rank.Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind: %s", h.rank.Name())
	case Straight:
		return fmt.Sprintf("Straight: %s high", h.rank.Name())
	case Flush:
		return fmt.Sprintf("Flush of %s, %s high", h.card.Suit.Name(), h.card.Rank.Name())
	case FullHouse:
		return fmt.Sprintf("Full house: %s over %s", h.rank.Name(), h.second.Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind: %s", h.rank.Name())
	case StraightFlush:
		return fmt.Sprintf("Straight flush: %s high", h.rank.Name())
	default:
		panic(fmt.Sprintf("unknown hand category: %d", h.category))
	}
}
