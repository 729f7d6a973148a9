package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/protocol"
	"github.com/tinymachines/wopr/pkg/session"
)

// sendQueueSize bounds the per-connection outbound queue. A client that
// stops reading loses messages instead of stalling the session.
const sendQueueSize = 32

// wsConn adapts one websocket connection to the session.Conn contract:
// a single writer goroutine drains the send queue so emissions never
// interleave on the wire.
type wsConn struct {
	ws   *websocket.Conn
	send chan protocol.Message
	done chan struct{}
	once sync.Once
}

func newConn(ws *websocket.Conn) *wsConn {
	return &wsConn{
		ws:   ws,
		send: make(chan protocol.Message, sendQueueSize),
		done: make(chan struct{}),
	}
}

// Send queues one outbound message. Safe after Close; a full queue or a
// closed connection drops the message with a log line.
func (c *wsConn) Send(msg protocol.Message) {
	select {
	case <-c.done:
		logger.Debug("dropping message to closed connection")
	case c.send <- msg:
	default:
		logger.Warn("dropping message to slow client")
	}
}

// Close tears the socket down. Idempotent.
func (c *wsConn) Close() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// writePump is the connection's only writer.
func (c *wsConn) writePump() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			data, err := protocol.NewMessageFrame(msg).Encode()
			if err != nil {
				logger.Error("failed to encode outbound frame: %v", err)
				continue
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("write failed, closing connection: %v", err)
				c.Close()
				return
			}
		}
	}
}

// readPump feeds inbound commands to the controller until the peer goes
// away, then releases the session.
func (c *wsConn) readPump(ctrl *session.Controller) {
	defer func() {
		ctrl.HandleDisconnect()
		c.Close()
	}()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			// Malformed payloads are logged and dropped, never fatal.
			logger.Warn("dropping malformed frame: %v", err)
			continue
		}
		if frame.Event != protocol.EventCommand {
			logger.Warn("dropping unexpected %q frame from client", frame.Event)
			continue
		}

		ctrl.HandleCommand(frame.Command)
	}
}
