package server

import (
	"encoding/json"

	"deck-dealer/internal/deck"
	"deck-dealer/internal/protocol"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client represents a single WebSocket connection and the deck it owns.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string // Unique identifier, assigned before registration

	// Owned by the hub's Run goroutine.
	deck *deck.Deck
	log  *logrus.Entry
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("client", c.ID).Warnf("Unexpected close error: %v", err)
			}
			return
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			logrus.WithField("client", c.ID).Warnf("Error unmarshalling message: %v", err)
			continue
		}

		select {
		case c.hub.processMessage <- clientMessage{client: c, message: msg}:
		case <-c.hub.done:
			return
		}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logrus.WithField("client", c.ID).Warnf("Write error: %v", err)
			break
		}
	}
}
