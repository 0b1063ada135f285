package protocol

import (
	"encoding/json"
	"errors"

	"deck-dealer/internal/deck"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "draw", "return")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Client -> server message types.
const (
	TypeDraw   = "draw"
	TypeReturn = "return"
	TypeReset  = "reset"
	TypeSize   = "size"
	TypePing   = "ping"
)

// Server -> client message types.
const (
	TypeDeckReady = "deck_ready"
	TypeDrawn     = "drawn"
	TypeReturned  = "returned"
	TypeResetDone = "reset_done"
	TypePong      = "pong"
	TypeError     = "error"
)

// Error kinds reported in ErrorPayload.Kind.
const (
	KindInvalidInput = "invalid_input"
	KindEmptyDeck    = "empty_deck"
	KindInvalidState = "invalid_state"
	KindInternal     = "internal"
)

// --- Client -> Server Payload Structs ---

type DrawPayload struct {
	Shuffled bool `json:"shuffled"`
	Count    int  `json:"count,omitempty"` // Defaults to 1
}

type ReturnPayload struct {
	Cards []deck.Card `json:"cards"`
}

// --- Server -> Client Payload Structs ---

type DeckReadyPayload struct {
	DeckID string `json:"deck_id"`
	Size   int    `json:"size"`
}

type DrawnPayload struct {
	Cards []deck.Card `json:"cards"`
	Size  int         `json:"size"`
}

// SizePayload answers size, returned and reset_done messages.
type SizePayload struct {
	Size int `json:"size"`
}

type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorKind maps a deck error to the kind reported to clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, deck.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, deck.ErrEmptyDeck):
		return KindEmptyDeck
	case errors.Is(err, deck.ErrInvalidState):
		return KindInvalidState
	default:
		return KindInternal
	}
}

// NewErrorPayload builds the error payload for err.
func NewErrorPayload(err error) ErrorPayload {
	return ErrorPayload{Kind: ErrorKind(err), Message: err.Error()}
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
