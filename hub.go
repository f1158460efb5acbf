package main

import (
	"encoding/json"
	"sync"
)

type Hub struct {
	mu               sync.Mutex
	clients          map[*Client]struct{}
	broadcastStatus  chan StatusResponse
	broadcastPlaced  chan placedPayload
	broadcastRestart chan StatusResponse
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// placedPayload carries only which side moved. Clients decide whether to
// turn it into sound, animation, or nothing.
type placedPayload struct {
	Player int `json:"player"`
}

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[*Client]struct{}),
		broadcastStatus:  make(chan StatusResponse, 32),
		broadcastPlaced:  make(chan placedPayload, 32),
		broadcastRestart: make(chan StatusResponse, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.broadcast(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastPlaced:
			h.broadcast(wsMessage{Type: "placed", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastRestart:
			h.broadcast(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

// sendJSON drops the message when the client's buffer is full; a slow
// consumer only misses intermediate states.
func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// publishPlaced never blocks the game lock: the placed event is best
// effort, like the rest of the broadcast path.
func (h *Hub) publishPlaced(player PlayerColor) {
	payload := placedPayload{Player: playerToInt(player)}
	select {
	case h.broadcastPlaced <- payload:
	default:
	}
}

// publishStatus queues a status broadcast without ever blocking the
// caller; once Run has stopped the update is simply dropped.
func (h *Hub) publishStatus(status StatusResponse) {
	select {
	case h.broadcastStatus <- status:
	default:
	}
}

func (h *Hub) publishRestart(status StatusResponse) {
	select {
	case h.broadcastRestart <- status:
	default:
	}
}
