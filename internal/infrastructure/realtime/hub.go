// Package realtime envia atualizações de pontuação das etiquetas via websocket.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Message é o envelope enviado aos assinantes
type Message struct {
	Type      string `json:"type"`
	TagID     string `json:"tag_id"`
	Score     int    `json:"score,omitempty"`
	Upvotes   int    `json:"upvotes,omitempty"`
	Downvotes int    `json:"downvotes,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub mantém os assinantes de cada etiqueta
type Hub struct {
	mu       sync.RWMutex
	subs     map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria o hub; checkOrigin decide quais origens podem abrir o socket
func NewHub(checkOrigin func(r *http.Request) bool, logger ports.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// NotifyTagScore implementa ports.ScoreNotifier.
// Assinantes lentos com buffer cheio perdem a mensagem.
func (h *Hub) NotifyTagScore(tagID string, score int, tally entities.VoteTally) {
	payload, err := json.Marshal(Message{
		Type:      "tag.score",
		TagID:     tagID,
		Score:     score,
		Upvotes:   tally.Upvotes,
		Downvotes: tally.Downvotes,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.subs[tagID] {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("dropping score update for slow subscriber", "tag_id", tagID)
		}
	}
}

// Subscribers retorna quantos clientes acompanham a etiqueta
func (h *Hub) Subscribers(tagID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[tagID])
}

// Serve faz o upgrade da conexão e a mantém inscrita até o cliente fechar
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, tagID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(tagID, c)

	ack, _ := json.Marshal(Message{Type: "subscribed", TagID: tagID})
	c.send <- ack

	go h.writePump(c)
	h.readPump(c)

	h.unregister(tagID, c)
	return nil
}

func (h *Hub) register(tagID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[tagID] == nil {
		h.subs[tagID] = make(map[*client]struct{})
	}
	h.subs[tagID][c] = struct{}{}
}

func (h *Hub) unregister(tagID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[tagID][c]; !ok {
		return
	}
	delete(h.subs[tagID], c)
	if len(h.subs[tagID]) == 0 {
		delete(h.subs, tagID)
	}
	close(c.send)
}

// readPump descarta mensagens do cliente e detecta o fechamento
func (h *Hub) readPump(c *client) {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var _ ports.ScoreNotifier = (*Hub)(nil)
