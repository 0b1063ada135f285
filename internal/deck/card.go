package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Size is the number of cards in a full pack.
const Size = NumSuits * NumRanks

// Card represents a single playing card. The zero value (Ace of Clubs) is only
// a placeholder for pre-allocated storage.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard pairs a suit and a rank.
func NewCard(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Index returns the dense identity of the card in [0,52).
func (c Card) Index() int {
	return c.Suit.Index()*NumRanks + c.Rank.Index()
}

// Code returns the two-character code of the card, rank then suit ("AS", "TD").
func (c Card) Code() string {
	return string([]rune{c.Rank.Char(), c.Suit.Char()})
}

func (c Card) String() string {
	return c.Code()
}

func (c Card) valid() bool {
	return c.Suit.valid() && c.Rank.valid()
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i >= Size {
		return Card{}, fmt.Errorf("card index %d: %w", i, ErrInvalidInput)
	}
	return Card{Suit: Suit(i / NumRanks), Rank: Rank(i % NumRanks)}, nil
}

// ParseCard decodes a two-character card code such as "As", "th" or "2C".
func ParseCard(code string) (Card, error) {
	runes := []rune(strings.TrimSpace(code))
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("card code %q (want 2 chars like AS, TD): %w", code, ErrInvalidInput)
	}
	r, err := ParseRank(runes[0])
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(runes[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: s, Rank: r}, nil
}

// AllCards returns the 52 cards in fresh-pack order, suits outer and ranks inner.
func AllCards() []Card {
	cards := make([]Card, 0, Size)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, NewCard(s, r))
		}
	}
	return cards
}

// MarshalJSON encodes a Card as its code string.
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("card %d/%d: %w", c.Suit, c.Rank, ErrInvalidInput)
	}
	return json.Marshal(c.Code())
}

// UnmarshalJSON decodes a card code string. Both characters are case-insensitive.
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	card, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
