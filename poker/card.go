// Package poker classifies a hand of playing cards into its best-matching
// poker category and defines a total order over classified hands.
package poker

import "fmt"

// Suit represents a card suit. Suits are named only and carry no ordering:
// two cards that differ only in suit compare equal by rank, but remain
// distinct values.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit code used in compact card notation
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Name returns the lower-case suit name used in hand descriptions
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Rank represents a card rank. The numeric value doubles as the comparison
// key: Deuce is 2, Ace is fixed at 14 (aces are always high).
type Rank uint8

const (
	Deuce Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Compare returns a negative, zero, or positive value as r sorts before,
// equal to, or after other.
func (r Rank) Compare(other Rank) int {
	return int(r) - int(other)
}

// String returns the single-character rank code (2-9, T, J, Q, K, A)
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Name returns the full rank name used in hand descriptions
func (r Rank) Name() string {
	switch r {
	case Deuce:
		return "Deuce"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Compare orders cards by rank only. Two cards of equal rank but different
// suit compare equal here even though they are not equal as values.
func (c Card) Compare(other Card) int {
	return c.Rank.Compare(other.Rank)
}

// String returns the compact notation for the card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Description returns the long form of the card (e.g., "Ace of spades")
func (c Card) Description() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}
