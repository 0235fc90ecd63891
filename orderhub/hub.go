package orderhub

import (
	"log"
	"net/http"
	"sync"
	"time"

	"petalia/middleware"
	"petalia/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Client is one connected admin session.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
}

// Hub fans order lifecycle events out to every connected admin.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast hands a payload to every connected client. Called by the event
// worker with whatever arrives on the shop event channel.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades an admin connection. Browsers cannot set headers on
// websocket dials, so the token rides in ?token=.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if !utils.HasRole(claims.Role, "admin") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("orderhub upgrade error:", err)
		return
	}

	client := &Client{Conn: conn, Send: make(chan []byte, 16), UserID: claims.UserID}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for data := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.Conn.Close()
	}()
	for {
		// the feed is one-way; reads only detect disconnects
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
