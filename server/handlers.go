package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS middleware allow-list;
		// the websocket handshake accepts what chi let through
		return true
	},
}

// Handler wires the hub and session into HTTP endpoints
type Handler struct {
	hub     *Hub
	session *Session
	ctx     context.Context
}

// NewHandler creates a handler; ctx bounds the websocket pump lifetimes
func NewHandler(hub *Hub, session *Session, ctx context.Context) *Handler {
	return &Handler{hub: hub, session: session, ctx: ctx}
}

// Router builds the chi router with the service middleware stack
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HandleHealth)
	r.Get("/ws", h.HandleWebSocket)
	r.Post("/control/{command}", h.HandleControl)
	return r
}

// HandleWebSocket upgrades the connection and registers a viewer
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	c := NewClient(uuid.New().String(), conn, h.hub)
	h.hub.Register(c)

	// Use the service context, not the request context: the request ends
	// when this handler returns but the pumps live on
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)
}

// HandleControl queues one playback command
func (h *Handler) HandleControl(w http.ResponseWriter, r *http.Request) {
	cmd, err := ParseCommand(chi.URLParam(r, "command"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.session.Dispatch(cmd); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// HandleHealth reports service liveness
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "healthy",
		"service": "pitchview-server",
	})
}
