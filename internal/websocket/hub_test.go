package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vibewealth/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHubBroadcastsToUserOnly(t *testing.T) {
	hub := NewHub()
	alice := &Client{send: make(chan []byte, 1)}
	bob := &Client{send: make(chan []byte, 1)}
	hub.Register(1, alice)
	hub.Register(2, bob)

	hub.BroadcastBalance(1, BalanceUpdate{AccountID: 7, Balance: 500, BalanceDisplay: "5.00"})

	select {
	case payload := <-alice.send:
		var update BalanceUpdate
		if err := json.Unmarshal(payload, &update); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if update.AccountID != 7 || update.Balance != 500 {
			t.Fatalf("unexpected update: %#v", update)
		}
	default:
		t.Fatalf("expected alice to receive update")
	}
	select {
	case <-bob.send:
		t.Fatalf("bob should not receive alice's update")
	default:
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	client := &Client{send: make(chan []byte, 1)}
	hub.Register(1, client)
	before := testutil.ToFloat64(metrics.BalanceUpdatesDropped)
	hub.BroadcastBalance(1, BalanceUpdate{AccountID: 1})
	hub.BroadcastBalance(1, BalanceUpdate{AccountID: 2})
	if len(client.send) != 1 {
		t.Fatalf("expected one buffered message, got %d", len(client.send))
	}
	if dropped := testutil.ToFloat64(metrics.BalanceUpdatesDropped) - before; dropped != 1 {
		t.Fatalf("expected one dropped update, got %v", dropped)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	client := &Client{send: make(chan []byte, 1)}
	hub.Register(1, client)
	if hub.Subscribers(1) != 1 {
		t.Fatalf("expected one subscriber")
	}
	hub.Unregister(1, client)
	hub.Unregister(1, client)
	if hub.Subscribers(1) != 0 {
		t.Fatalf("expected no subscribers")
	}
}

func TestUpgraderCheckOrigin(t *testing.T) {
	upgrader := NewUpgrader([]string{"http://localhost:8000"})
	req := httptest.NewRequest(http.MethodGet, "/ws/balances", nil)
	req.Header.Set("Origin", "http://localhost:8000")
	if !upgrader.CheckOrigin(req) {
		t.Fatalf("expected allowed origin")
	}
	req.Header.Set("Origin", "http://evil.example")
	if upgrader.CheckOrigin(req) {
		t.Fatalf("expected rejected origin")
	}
}
