package chat

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// MessageSink receives parseable chat frames for asynchronous persistence.
// The queue dispatcher satisfies it.
type MessageSink interface {
	Enqueue(msg ports.CreateMessageInput)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades chat socket requests and wires clients into the registry.
// The socket carries no authentication; any party holding a conversation ID
// may attach to it.
type Handler struct {
	registry *Registry
	sink     MessageSink
	log      zerolog.Logger
}

func NewHandler(registry *Registry, sink MessageSink, log zerolog.Logger) *Handler {
	return &Handler{registry: registry, sink: sink, log: log}
}

// chatFrame is the subset of an inbound frame the persistence path needs.
// Frames that do not carry it are still rebroadcast, just not stored.
type chatFrame struct {
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}

// Serve handles GET /ws/chat/:conversation_id.
func (h *Handler) Serve(c echo.Context) error {
	conversationID, err := strconv.ParseInt(c.Param("conversation_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid conversation id")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := newClient(conn, conversationID, h.log)
	h.registry.Join(conversationID, client)
	metrics.WSConnectionsActive.Inc()

	go client.writePump()
	go h.readLoop(client)

	return nil
}

func (h *Handler) readLoop(client *client) {
	defer func() {
		h.registry.Leave(client.conversationID, client)
		client.Close()
		metrics.WSConnectionsActive.Dec()
	}()

	client.readPump(func(data []byte) {
		// Every frame is rebroadcast verbatim, sender included. Frames that
		// parse as messages are additionally queued for persistence.
		h.registry.Broadcast(client.conversationID, data)

		var frame chatFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.SenderID == 0 || frame.Content == "" {
			return
		}
		if h.sink != nil {
			h.sink.Enqueue(ports.CreateMessageInput{
				ConversationID: client.conversationID,
				SenderID:       frame.SenderID,
				ReceiverID:     frame.ReceiverID,
				Content:        frame.Content,
			})
		}
	})
}
