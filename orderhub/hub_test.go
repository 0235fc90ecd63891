package orderhub

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 1), UserID: "admin1"}
	hub.register <- client

	payload, _ := json.Marshal(map[string]string{"event": "order-created", "id": "o1"})
	hub.Broadcast(payload)

	select {
	case got := <-client.Send:
		if string(got) != string(payload) {
			t.Errorf("got %s, want %s", got, payload)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("broadcast did not reach client")
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 1), UserID: "a"}
	b := &Client{Send: make(chan []byte, 1), UserID: "b"}
	hub.register <- a
	hub.register <- b

	hub.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case got := <-c.Send:
			if string(got) != "hello" {
				t.Errorf("client %s got %s", c.UserID, got)
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("client %s did not receive broadcast", c.UserID)
		}
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 1), UserID: "admin1"}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected Send to be closed after unregister")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Send was not closed after unregister")
	}
}

func TestHubSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// unbuffered Send that nobody reads simulates a stalled connection
	slow := &Client{Send: make(chan []byte), UserID: "slow"}
	healthy := &Client{Send: make(chan []byte, 2), UserID: "healthy"}
	hub.register <- slow
	hub.register <- healthy

	hub.Broadcast([]byte("first"))
	hub.Broadcast([]byte("second"))

	// the hub handles broadcasts in order, so once the healthy client has
	// both payloads the slow client has already been evicted
	for _, want := range []string{"first", "second"} {
		select {
		case got := <-healthy.Send:
			if string(got) != want {
				t.Errorf("healthy client got %s, want %s", got, want)
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("healthy client did not receive %s", want)
		}
	}

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected slow client channel to be closed without delivery")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("slow client was not dropped")
	}
}
