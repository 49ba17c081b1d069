package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/service/pubsub"
	"github.com/atelierhq/design-studio-api/internal/utils"
	"github.com/atelierhq/design-studio-api/pkg/logger"
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

type Client struct {
	conn      *websocket.Conn
	accountID string
	send      chan []byte
}

// WebSocketHandler streams completed designs to connected clients. Fan-out
// across API instances goes through Redis pub/sub, so a design generated on
// one node reaches clients on all of them.
type WebSocketHandler struct {
	clients        map[*Client]bool
	register       chan *Client
	unregister     chan *Client
	mutex          sync.RWMutex
	logger         *logger.Logger
	pubsub         *pubsub.RedisPubSub
	ctx            context.Context
	cancel         context.CancelFunc
	accountClients map[string]int // Count of clients per account
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:        make(map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		logger:         logger,
		pubsub:         pubsub,
		ctx:            ctx,
		cancel:         cancel,
		accountClients: make(map[string]int),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// Account scope comes from the auth middleware and is required
	accountID, err := utils.GetAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No account ID found"})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	// Create and register new client
	client := &Client{
		conn:      conn,
		accountID: accountID,
		send:      make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.accountClients[client.accountID]++

			// Subscribe to the account's channel if this is the first client
			if h.accountClients[client.accountID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.accountID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to account %s: %v", client.accountID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				// Decrement account client count
				h.accountClients[client.accountID]--

				// Unsubscribe if no more clients for this account
				if h.accountClients[client.accountID] == 0 {
					h.pubsub.Unsubscribe(client.accountID)
					delete(h.accountClients, client.accountID)
				}
			}
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

// handlePubSubMessage handles designs received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(design *dto.DesignResponse) {
	message, err := json.Marshal(design)
	if err != nil {
		h.logger.Errorf("Error marshaling design: %v", err)
		return
	}

	// Write lock: slow clients are evicted in place
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.accountID == design.AccountID {
			select {
			case client.send <- message:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.accountClients[client.accountID]--

				// Unsubscribe if no more clients for this account
				if h.accountClients[client.accountID] == 0 {
					h.pubsub.Unsubscribe(client.accountID)
					delete(h.accountClients, client.accountID)
				}
			}
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
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.accountID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.accountID, err)
			}
			break
		}

		// Handle any actual messages from client (though we don't expect any)
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.accountID, string(message))
		}
	}
}

// BroadcastDesign publishes a completed design for every stream client of
// the owning account
func (h *WebSocketHandler) BroadcastDesign(design *dto.DesignResponse) {
	if err := h.pubsub.Publish(h.ctx, design); err != nil {
		h.logger.Errorf("Failed to publish design: %v", err)
	}
}
