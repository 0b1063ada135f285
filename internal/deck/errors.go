package deck

import "errors"

var (
	// ErrInvalidInput is returned when a character, index or card code is outside its domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyDeck is returned when drawing from a deck with no undrawn cards.
	ErrEmptyDeck = errors.New("deck is empty")
	// ErrInvalidState is returned when returning a card that is not in play.
	ErrInvalidState = errors.New("invalid deck state")
)
