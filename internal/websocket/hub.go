package websocket

import (
	"encoding/json"
	"sync"

	"vibewealth/internal/metrics"
)

// BalanceUpdate is pushed to a user's sockets whenever one of their
// account balances changes.
type BalanceUpdate struct {
	AccountID      int64  `json:"account_id"`
	Balance        int64  `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

type clientSet map[*Client]struct{}

// Hub fans balance updates out to every open socket of a user.
type Hub struct {
	mu   sync.RWMutex
	subs map[int64]clientSet
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int64]clientSet)}
}

func (h *Hub) Register(userID int64, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[userID]
	if !ok {
		set = make(clientSet)
		h.subs[userID] = set
	}
	set[client] = struct{}{}
}

// Unregister is idempotent.
func (h *Hub) Unregister(userID int64, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[userID]
	delete(set, client)
	if len(set) == 0 {
		delete(h.subs, userID)
	}
}

// Subscribers reports how many sockets are open for a user.
func (h *Hub) Subscribers(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

// BroadcastBalance never blocks: a client whose buffer is full misses the
// update and the drop is counted.
func (h *Hub) BroadcastBalance(userID int64, update BalanceUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		return
	}
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.subs[userID]))
	for client := range h.subs[userID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		if !client.trySend(payload) {
			metrics.BalanceUpdatesDropped.Inc()
		}
	}
}
