package deck

import (
	"fmt"
	"unicode"
)

// Suit represents the suit of a card.
type Suit uint8

const (
	Club Suit = iota
	Spade
	Heart
	Diamond
)

// NumSuits is the number of suits in a pack.
const NumSuits = 4

var suitChars = [NumSuits]rune{'C', 'S', 'H', 'D'}

var suitNames = [NumSuits]string{"Club", "Spade", "Heart", "Diamond"}

// Suits returns every suit in index order.
func Suits() []Suit {
	return []Suit{Club, Spade, Heart, Diamond}
}

// Index returns the dense index of the suit in [0,4).
func (s Suit) Index() int {
	return int(s)
}

// Char returns the single-character code of the suit.
func (s Suit) Char() rune {
	if int(s) >= NumSuits {
		return '?'
	}
	return suitChars[s]
}

func (s Suit) String() string {
	if int(s) >= NumSuits {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

func (s Suit) valid() bool {
	return int(s) < NumSuits
}

// ParseSuit maps a suit character (C, S, H, D in either case) to its Suit.
func ParseSuit(ch rune) (Suit, error) {
	switch unicode.ToLower(ch) {
	case 'c':
		return Club, nil
	case 's':
		return Spade, nil
	case 'h':
		return Heart, nil
	case 'd':
		return Diamond, nil
	}
	return 0, fmt.Errorf("suit char %q: %w", ch, ErrInvalidInput)
}

// SuitFromIndex returns the suit with the given dense index.
func SuitFromIndex(i int) (Suit, error) {
	if i < 0 || i >= NumSuits {
		return 0, fmt.Errorf("suit index %d: %w", i, ErrInvalidInput)
	}
	return Suit(i), nil
}
