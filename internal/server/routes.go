package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"deck-dealer/internal/deck"
	"deck-dealer/internal/protocol"

	"github.com/sirupsen/logrus"
)

// CardInfo describes one card of the universe.
type CardInfo struct {
	Code  string `json:"code"`
	Index int    `json:"index"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
}

func newCardInfo(c deck.Card) CardInfo {
	return CardInfo{Code: c.Code(), Index: c.Index(), Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func HandleRoutes(mux *http.ServeMux, hub *Hub) {
	mux.HandleFunc("GET /api/cards", GetCardsHandler)
	mux.HandleFunc("GET /api/cards/{code}", GetCardHandler)
	mux.HandleFunc("GET /api/decks", func(w http.ResponseWriter, r *http.Request) {
		GetDecksHandler(hub, w, r)
	})

	logrus.Info("Registered routes: /api/cards, /api/cards/{code}, /api/decks")
}

// HandleStatic serves dir at "/" when it exists. It reports whether the file
// server was mounted.
func HandleStatic(mux *http.ServeMux, dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logrus.Warnf("Static directory %q not found, not serving /", dir)
		return false
	}
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	logrus.Infof("Serving static files from %s", dir)
	return true
}

// GetCardsHandler lists all 52 cards in fresh-pack order.
func GetCardsHandler(w http.ResponseWriter, r *http.Request) {
	all := deck.AllCards()
	infos := make([]CardInfo, len(all))
	for i, c := range all {
		infos[i] = newCardInfo(c)
	}
	writeJSON(w, http.StatusOK, infos)
}

// GetCardHandler decodes a card code such as "TH".
func GetCardHandler(w http.ResponseWriter, r *http.Request) {
	c, err := deck.ParseCard(r.PathValue("code"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, protocol.NewErrorPayload(err))
		return
	}
	writeJSON(w, http.StatusOK, newCardInfo(c))
}

func GetDecksHandler(hub *Hub, w http.ResponseWriter, r *http.Request) {
	decks, err := hub.Decks(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrHubClosed) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, "Failed to fetch decks", status)
		return
	}
	writeJSON(w, http.StatusOK, decks)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("Error encoding response: %v", err)
	}
}
