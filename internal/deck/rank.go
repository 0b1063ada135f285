package deck

import (
	"fmt"
	"unicode"
)

// Rank represents the rank of a card, Ace low.
type Rank uint8

const (
	Ace Rank = iota
	Two
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
)

// NumRanks is the number of ranks per suit.
const NumRanks = 13

var rankChars = [NumRanks]rune{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

var rankNames = [NumRanks]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Ranks returns every rank in index order.
func Ranks() []Rank {
	ranks := make([]Rank, NumRanks)
	for i := range ranks {
		ranks[i] = Rank(i)
	}
	return ranks
}

// Index returns the dense index of the rank in [0,13).
func (r Rank) Index() int {
	return int(r)
}

// Char returns the single-character code of the rank. Ten is 'T'.
func (r Rank) Char() rune {
	if int(r) >= NumRanks {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string {
	if int(r) >= NumRanks {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

func (r Rank) valid() bool {
	return int(r) < NumRanks
}

// ParseRank maps a rank character (A, 2-9, T, J, Q, K in either case) to its Rank.
func ParseRank(ch rune) (Rank, error) {
	u := unicode.ToUpper(ch)
	for i, c := range rankChars {
		if c == u {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("rank char %q: %w", ch, ErrInvalidInput)
}

// RankFromIndex returns the rank with the given dense index.
func RankFromIndex(i int) (Rank, error) {
	if i < 0 || i >= NumRanks {
		return 0, fmt.Errorf("rank index %d: %w", i, ErrInvalidInput)
	}
	return Rank(i), nil
}
