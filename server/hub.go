// Package server is the broadcast adapter: it runs a playback session on a
// fixed tick and streams snapshots to websocket clients, taking playback
// commands over HTTP. It is a remote renderer for the engine, nothing more.
package server

import (
	"context"
	"log"
)

const broadcastBuffer = 256

// Hub maintains the set of active clients and fans snapshots out to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run services the hub's channels until the context is canceled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			log.Printf("client %s connected (total: %d)", c.ID, len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				log.Printf("client %s disconnected (total: %d)", c.ID, len(h.clients))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					// Slow consumer: drop it rather than stall the tick
					delete(h.clients, c)
					close(c.Send)
					log.Printf("client %s dropped (send buffer full)", c.ID)
				}
			}
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues a message for every connected client. A full queue
// drops the message; the next tick replaces it anyway.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}
