package chat

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// writeWait bounds a single frame write; exceeding it closes the socket.
	writeWait = 10 * time.Second

	// pongWait is how long the peer may stay silent before the read side
	// gives up. pingPeriod keeps the connection alive under pongWait.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
	sendBufferSize = 256
)

// client is one websocket connection attached to a conversation. Two
// goroutines serve it: readPump feeds inbound frames to the handler, and
// writePump drains the send buffer. gorilla/websocket allows one concurrent
// reader and one concurrent writer, so the pumps never share the conn.
type client struct {
	conn           *websocket.Conn
	conversationID int64
	send           chan []byte
	closeOnce      sync.Once
	log            zerolog.Logger
}

func newClient(conn *websocket.Conn, conversationID int64, log zerolog.Logger) *client {
	return &client{
		conn:           conn,
		conversationID: conversationID,
		send:           make(chan []byte, sendBufferSize),
		log:            log,
	}
}

// Send buffers a frame for delivery. Returns false when the buffer is full,
// signalling the registry to drop this subscriber.
func (c *client) Send(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close terminates the write side. Safe to call more than once.
func (c *client) Close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// readPump reads frames until the peer disconnects, handing each one to
// onFrame. It owns the read deadline and the pong handler.
func (c *client) readPump(onFrame func(data []byte)) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug().Err(err).
					Int64("conversation_id", c.conversationID).
					Msg("chat socket closed unexpectedly")
			}
			return
		}
		onFrame(data)
	}
}

// writePump drains the send buffer onto the socket and keeps the connection
// alive with periodic pings. It exits when the send channel closes or a
// write fails.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
