package server

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"deck-dealer/internal/deck"
	"deck-dealer/internal/protocol"

	"github.com/sirupsen/logrus"
)

// ErrHubClosed is returned by Hub queries once Run has returned.
var ErrHubClosed = errors.New("hub closed")

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// DeckInfo describes one live deck.
type DeckInfo struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Size     int    `json:"size"`
}

// Hub manages active WebSocket connections and the deck each one owns.
// Every deck is only touched from the Run goroutine.
type Hub struct {
	clients        map[*Client]bool
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	snapshots      chan chan []DeckInfo
	done           chan struct{}
	newRand        func() deck.Rand
}

// NewHub creates a new Hub. newRand supplies the random source of each new
// deck; nil gives every deck its own time-seeded source.
func NewHub(newRand func() deck.Rand) *Hub {
	if newRand == nil {
		newRand = func() deck.Rand { return nil }
	}
	return &Hub{
		clients:        make(map[*Client]bool),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		snapshots:      make(chan chan []DeckInfo),
		done:           make(chan struct{}),
		newRand:        newRand,
	}
}

// SeededRands returns a source factory where the n-th deck is seeded with seed+n.
// It is not safe for concurrent use; the hub only calls it from Run.
func SeededRands(seed uint64) func() deck.Rand {
	var n uint64
	return func() deck.Rand {
		r := deck.NewRand(seed + n)
		n++
		return r
	}
}

// Run starts the Hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			logrus.Info("Hub stopped.")
			return

		case client := <-h.register:
			client.deck = deck.New(h.newRand())
			client.log = logrus.WithFields(logrus.Fields{"client": client.ID, "deck": client.deck.ID})
			h.clients[client] = true
			client.log.Infof("Client connected from %s", client.conn.RemoteAddr())
			h.sendMessage(client, protocol.TypeDeckReady, protocol.DeckReadyPayload{
				DeckID: client.deck.ID,
				Size:   client.deck.Size(),
			})

		case client := <-h.unregister:
			if h.clients[client] {
				h.removeClient(client)
				client.log.Info("Client disconnected")
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)

		case reply := <-h.snapshots:
			reply <- h.deckInfos()
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

// Decks returns the id and size of every live deck.
func (h *Hub) Decks(ctx context.Context) ([]DeckInfo, error) {
	reply := make(chan []DeckInfo, 1)
	select {
	case h.snapshots <- reply:
	case <-h.done:
		return nil, ErrHubClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case infos := <-reply:
		return infos, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) deckInfos() []DeckInfo {
	infos := make([]DeckInfo, 0, len(h.clients))
	for client := range h.clients {
		infos = append(infos, DeckInfo{ID: client.deck.ID, ClientID: client.ID, Size: client.deck.Size()})
	}
	slices.SortFunc(infos, func(a, b DeckInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// handleMessage applies a client's request to the deck it owns.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	if !h.clients[client] {
		// Client was dropped while its message was in flight.
		return
	}
	d := client.deck

	switch msg.Type {
	case protocol.TypeDraw:
		var payload protocol.DrawPayload
		if err := decodePayload(msg, &payload); err != nil {
			h.sendError(client, err)
			return
		}
		if payload.Count == 0 {
			payload.Count = 1
		}
		if payload.Count < 0 || payload.Count > deck.Size {
			h.sendError(client, fmt.Errorf("draw count %d (want 1-%d): %w", payload.Count, deck.Size, deck.ErrInvalidInput))
			return
		}
		cards, err := d.DrawN(payload.Count, payload.Shuffled)
		if len(cards) > 0 {
			client.log.Debugf("Drew %d cards (shuffled=%t), %d left.", len(cards), payload.Shuffled, d.Size())
			h.sendMessage(client, protocol.TypeDrawn, protocol.DrawnPayload{Cards: cards, Size: d.Size()})
		}
		if err != nil {
			h.sendError(client, err)
		}

	case protocol.TypeReturn:
		var payload protocol.ReturnPayload
		if err := decodePayload(msg, &payload); err != nil {
			h.sendError(client, err)
			return
		}
		if err := returnCards(d, payload.Cards); err != nil {
			h.sendError(client, err)
			return
		}
		h.sendMessage(client, protocol.TypeReturned, protocol.SizePayload{Size: d.Size()})

	case protocol.TypeReset:
		d.Reset()
		client.log.Info("Deck reset by client")
		h.sendMessage(client, protocol.TypeResetDone, protocol.SizePayload{Size: d.Size()})

	case protocol.TypeSize:
		h.sendMessage(client, protocol.TypeSize, protocol.SizePayload{Size: d.Size()})

	case protocol.TypePing:
		h.sendMessage(client, protocol.TypePong, nil)

	default:
		client.log.Warnf("Received unknown message type '%s'", msg.Type)
		h.sendError(client, fmt.Errorf("unknown message type %q: %w", msg.Type, deck.ErrInvalidInput))
	}
}

// returnCards returns all cards or none of them.
func returnCards(d *deck.Deck, cards []deck.Card) error {
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] || !d.InPlay(c) {
			return fmt.Errorf("return %s: card is not in play: %w", c, deck.ErrInvalidState)
		}
		seen[c] = true
	}
	for _, c := range cards {
		if err := d.ReturnCard(c); err != nil {
			return err
		}
	}
	return nil
}

func decodePayload(msg protocol.Message, v any) error {
	if len(msg.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", msg.Type, err, deck.ErrInvalidInput)
	}
	return nil
}

// sendMessage queues a message for the client without blocking the hub.
func (h *Hub) sendMessage(client *Client, msgType string, payload any) {
	if !h.clients[client] {
		return
	}
	msgBytes, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		client.log.Errorf("Error creating %s message: %v", msgType, err)
		return
	}
	select {
	case client.send <- msgBytes:
	default:
		client.log.Warn("Failed to send message (channel full), dropping client")
		h.removeClient(client)
	}
}

func (h *Hub) sendError(client *Client, err error) {
	client.log.Debugf("Request failed: %v", err)
	h.sendMessage(client, protocol.TypeError, protocol.NewErrorPayload(err))
}
