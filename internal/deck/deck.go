package deck

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Rand is the random source used for shuffled draws. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Deck is a 52-card pack that tracks which cards are currently drawn.
// A Deck is not safe for concurrent use; callers serialize access.
type Deck struct {
	ID string

	// cards holds the undrawn cards, always sorted by Card.Index.
	cards  []Card
	inPlay [Size]bool
	rng    Rand
	log    *logrus.Entry
}

// New creates a fresh deck. A nil rng is replaced by a time-seeded source.
func New(rng Rand) *Deck {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	id := uuid.NewString()
	d := &Deck{
		ID:    id,
		cards: make([]Card, 0, Size),
		rng:   rng,
		log:   logrus.WithField("deck", id),
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = append(d.cards[:0], AllCards()...)
	d.inPlay = [Size]bool{}
}

// Size returns the number of undrawn cards.
func (d *Deck) Size() int {
	return len(d.cards)
}

// DrawShuffled removes and returns a uniformly random undrawn card.
func (d *Deck) DrawShuffled() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d.take(d.rng.IntN(len(d.cards))), nil
}

// DrawUnshuffled removes and returns the undrawn card with the lowest index.
// A fresh deck yields the cards in AllCards order.
func (d *Deck) DrawUnshuffled() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d.take(0), nil
}

func (d *Deck) take(pos int) Card {
	c := d.cards[pos]
	d.cards = slices.Delete(d.cards, pos, pos+1)
	d.inPlay[c.Index()] = true
	return c
}

// DrawN draws up to n cards, n in [1,52]. On error it returns the cards drawn so far.
func (d *Deck) DrawN(n int, shuffled bool) ([]Card, error) {
	if n <= 0 || n > Size {
		return nil, fmt.Errorf("draw count %d (want 1-%d): %w", n, Size, ErrInvalidInput)
	}
	drawn := make([]Card, 0, min(n, len(d.cards)))
	for range n {
		var (
			c   Card
			err error
		)
		if shuffled {
			c, err = d.DrawShuffled()
		} else {
			c, err = d.DrawUnshuffled()
		}
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

// ReturnCard puts a drawn card back into the deck. Returning a card that is not
// in play, or one outside the 52-card universe, fails with ErrInvalidState and
// leaves the deck untouched.
func (d *Deck) ReturnCard(c Card) error {
	if !c.valid() {
		return fmt.Errorf("return suit=%d rank=%d: not a card of this deck: %w", c.Suit, c.Rank, ErrInvalidState)
	}
	idx := c.Index()
	if !d.inPlay[idx] {
		return fmt.Errorf("return %s: card is not in play: %w", c, ErrInvalidState)
	}
	pos, _ := slices.BinarySearchFunc(d.cards, idx, func(e Card, target int) int {
		return cmp.Compare(e.Index(), target)
	})
	d.cards = slices.Insert(d.cards, pos, c)
	d.inPlay[idx] = false
	d.log.Debugf("Card %s returned, %d cards in deck.", c, len(d.cards))
	return nil
}

// Reset restores all 52 cards and clears every in-play marking.
func (d *Deck) Reset() {
	drawn := Size - len(d.cards)
	d.fill()
	d.log.Debugf("Deck reset, %d drawn cards recovered.", drawn)
}

// InPlay reports whether c is currently drawn from this deck.
func (d *Deck) InPlay(c Card) bool {
	return c.valid() && d.inPlay[c.Index()]
}

// Remaining returns a copy of the undrawn cards in index order.
func (d *Deck) Remaining() []Card {
	return slices.Clone(d.cards)
}
