package terminal

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/protocol"
)

// Reconnection bounds, matching the page the relay originally served.
const (
	DefaultReconnectAttempts = 5
	DefaultReconnectDelay    = 1000 * time.Millisecond
)

// Socket is the client side of the relay channel. It dials with bounded
// retries and surfaces an error-kind CONNECTION TERMINATED line when the
// channel drops for good.
type Socket struct {
	url      string
	attempts int
	delay    time.Duration

	ws       *websocket.Conn
	incoming chan protocol.Message
	done     chan struct{}
}

func NewSocket(url string) *Socket {
	return &Socket{
		url:      url,
		attempts: DefaultReconnectAttempts,
		delay:    DefaultReconnectDelay,
		incoming: make(chan protocol.Message, 16),
		done:     make(chan struct{}),
	}
}

// NewSocketWithRetry overrides the reconnection bounds.
func NewSocketWithRetry(url string, attempts int, delay time.Duration) *Socket {
	s := NewSocket(url)
	s.attempts = attempts
	s.delay = delay
	return s
}

// Connect dials the relay, retrying up to the configured attempt count,
// then starts the read loop.
func (s *Socket) Connect() error {
	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		ws, _, err := websocket.DefaultDialer.Dial(s.url, nil)
		if err == nil {
			s.ws = ws
			go s.readLoop()
			return nil
		}
		lastErr = err
		logger.Warn("connect attempt %d/%d failed: %v", attempt, s.attempts, err)
		if attempt < s.attempts {
			time.Sleep(s.delay)
		}
	}
	return fmt.Errorf("failed to connect to %s after %d attempts: %w", s.url, s.attempts, lastErr)
}

// Messages delivers inbound relay messages. The channel closes after
// the final CONNECTION TERMINATED line when the link drops.
func (s *Socket) Messages() <-chan protocol.Message {
	return s.incoming
}

// SendCommand submits one typed line to the relay.
func (s *Socket) SendCommand(command string) error {
	data, err := protocol.NewCommandFrame(command).Encode()
	if err != nil {
		return err
	}
	if err := s.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	return nil
}

// Close hangs up deliberately; no CONNECTION TERMINATED line is shown.
func (s *Socket) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	if s.ws != nil {
		s.ws.Close()
	}
}

func (s *Socket) readLoop() {
	defer close(s.incoming)

	for {
		_, data, err := s.ws.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				// Deliberate close, not a dropped channel.
			default:
				s.incoming <- protocol.NewErrorMessage("CONNECTION TERMINATED")
			}
			return
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			logger.Warn("dropping malformed frame from relay: %v", err)
			continue
		}
		if frame.Event != protocol.EventMessage {
			continue
		}
		s.incoming <- frame.Message
	}
}
