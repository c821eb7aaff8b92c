package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DocumentPubSub fans document events out across API instances.
type DocumentPubSub interface {
	Publish(ctx context.Context, event *domain.DocumentEvent) error
	Subscribe(ctx context.Context, userID string, callback func(*domain.DocumentEvent)) error
	Unsubscribe(userID string)
	Close()
}

type Client struct {
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type WebSocketHandler struct {
	*BaseHandler
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	logger      *logger.Logger
	pubsub      DocumentPubSub
	ctx         context.Context
	cancel      context.CancelFunc
	userClients map[string]int // Count of clients per landlord
}

func NewWebSocketHandler(logger *logger.Logger, pubsub DocumentPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
		pubsub:      pubsub,
		ctx:         ctx,
		cancel:      cancel,
		userClients: make(map[string]int),
	}
}

// HandleWebSocket Stream document events
// @Summary Stream document events
// @Description Upgrades to a websocket that receives every document the caller stores from now on
// @Tags    documents
// @Success 101
// @Failure 401 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /documents/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	identity := h.Identity(h.RequestCtx(c))
	if identity == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("Failed to upgrade connection for user %s: %v", identity.ID, err)
		return
	}

	client := &Client{
		conn:   conn,
		userID: identity.ID,
		send:   make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.userClients[client.userID]++

			// Subscribe to the landlord's channel if this is the first client
			if h.userClients[client.userID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.userID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to user %s: %v", client.userID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// removeClient must be called with the mutex held.
func (h *WebSocketHandler) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.userClients[client.userID]--
	if h.userClients[client.userID] == 0 {
		h.pubsub.Unsubscribe(client.userID)
		delete(h.userClients, client.userID)
	}
}

// handlePubSubMessage handles events received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(event *domain.DocumentEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling document event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.userID != event.UserID {
			continue
		}
		select {
		case client.send <- message:
		default: // slow client
			h.removeClient(client)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
			// The hub loop is gone; release the client here so writePump ends too.
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()
		}
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for user %s: %v", client.userID, err)
			} else {
				h.logger.Warnf("Read error for user %s: %v", client.userID, err)
			}
			break
		}

		// Clients are not expected to send anything
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from user %s: %s", client.userID, string(message))
		}
	}
}

// BroadcastDocument sends a stored document to every connected client of its owner
func (h *WebSocketHandler) BroadcastDocument(event *domain.DocumentEvent) {
	if err := h.pubsub.Publish(h.ctx, event); err != nil {
		h.logger.Errorf("Failed to publish document event: %v", err)
	}
}
