package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// client wraps one websocket connection. Gorilla permits only a single
// concurrent writer per connection, and both the read-loop replies and
// Broadcast write to it, so every write goes through send.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (cl *client) send(v interface{}) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.conn.WriteJSON(v)
}

// Hub keeps the live connections per game and pushes engine events to
// them. Each connection carries a generated id; the session layer maps
// that id to the stable player identity.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]string // game id -> client -> conn id
	svc   GameService
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]string)}
}

// SetService wires the session manager in after construction.
func (h *Hub) SetService(svc GameService) { h.svc = svc }

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type inboundMessage struct {
	Action  string `json:"action"`
	TokenID string `json:"tokenId"`
	Face    int    `json:"face"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	gameID := c.Query("game_id")
	playerID := c.Query("player_id")
	if gameID == "" || playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing game_id or player_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	cl := &client{conn: conn}
	connID := uuid.NewString()

	if err := h.svc.BindConnection(gameID, playerID, connID); err != nil {
		_ = cl.send(gin.H{"action": "error", "data": gin.H{"error": err.Error()}})
		_ = conn.Close()
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[gameID]; !ok {
		h.rooms[gameID] = make(map[*client]string)
	}
	h.rooms[gameID][cl] = connID
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[gameID], cl)
		if len(h.rooms[gameID]) == 0 {
			delete(h.rooms, gameID)
		}
		h.mu.Unlock()
		_ = conn.Close()
		h.svc.HandleDisconnect(connID)
	}()

	// Push the current state to the (re)connected client.
	if view, err := h.svc.View(gameID, playerID); err == nil {
		_ = cl.send(gin.H{"action": "state", "data": view})
	}

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug().Str("game", gameID).Err(err).Msg("websocket closed")
			break
		}
		if err := h.dispatch(gameID, playerID, msg); err != nil {
			_ = cl.send(gin.H{"action": "error", "data": gin.H{"error": err.Error()}})
		}
	}
}

func (h *Hub) dispatch(gameID, playerID string, msg inboundMessage) error {
	switch msg.Action {
	case "roll":
		_, err := h.svc.RollDice(gameID, playerID)
		return err
	case "move":
		_, err := h.svc.PlayMove(gameID, playerID, msg.TokenID, msg.Face)
		return err
	case "skip":
		return h.svc.SkipTurn(gameID, playerID)
	default:
		log.Warn().Str("action", msg.Action).Msg("unknown ws action")
		return nil
	}
}

// Broadcast sends an event to every connection watching the game. The
// room is snapshotted under the read lock; dead connections are pruned
// afterwards under the write lock, never while only reading.
func (h *Hub) Broadcast(gameID string, action string, data interface{}) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[gameID]))
	for cl := range h.rooms[gameID] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	var dead []*client
	for _, cl := range clients {
		if err := cl.send(message); err != nil {
			log.Warn().Err(err).Msg("failed to send ws message")
			dead = append(dead, cl)
		}
	}
	if len(dead) == 0 {
		return
	}

	h.mu.Lock()
	for _, cl := range dead {
		cl.conn.Close()
		if room, ok := h.rooms[gameID]; ok {
			delete(room, cl)
			if len(room) == 0 {
				delete(h.rooms, gameID)
			}
		}
	}
	h.mu.Unlock()
}
