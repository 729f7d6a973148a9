package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/protocol"
	"github.com/tinymachines/wopr/pkg/wopr"
)

// Greeting pacing. Like the simulation and logout delays these are part
// of the scripted behavior.
const (
	GreetingDelay = 1500 * time.Millisecond
	PromptDelay   = 3000 * time.Millisecond
)

// Conn is what the controller needs from the transport: unicast back to
// this client, and teardown. Both must tolerate being called after the
// peer is gone.
type Conn interface {
	Send(msg protocol.Message)
	Close()
}

// Controller owns the lifecycle of one connection: the greeting
// sequence, command dispatch, and teardown. Every scheduled callback is
// registered against the controller so disconnect cancels all of them;
// a timer firing after close is a silent no-op by construction.
type Controller struct {
	Session Session

	conn    Conn
	gateway wopr.Gateway
	clock   Clock

	mu     sync.Mutex
	state  State
	timers []Timer
}

func NewController(conn Conn, gateway wopr.Gateway, clock Clock) *Controller {
	if clock == nil {
		clock = NewClock()
	}
	return &Controller{
		Session: newSession(),
		conn:    conn,
		gateway: gateway,
		clock:   clock,
		state:   StateConnecting,
	}
}

// Start emits the logon banner and schedules the two greeting lines.
// The greeting is fire-and-forget: commands arriving during the window
// are processed normally.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.state != StateConnecting {
		c.mu.Unlock()
		return
	}
	c.state = StateGreeting
	c.mu.Unlock()

	logger.Info("session connected: %s", c.Session.ID)

	c.emit(protocol.NewSystemMessage("LOGON: WOPR SYSTEM ACTIVE"))
	c.schedule(GreetingDelay, func() {
		c.emit(protocol.NewWoprMessage("GREETINGS PROFESSOR FALKEN."))
	})
	c.schedule(PromptDelay, func() {
		c.emit(protocol.NewWoprMessage("SHALL WE PLAY A GAME?"))
		c.mu.Lock()
		if c.state == StateGreeting {
			c.state = StateIdle
		}
		c.mu.Unlock()
	})
}

// HandleCommand classifies one line of input and dispatches it. Input
// is never echoed back; the client echoes locally.
func (c *Controller) HandleCommand(raw string) {
	c.mu.Lock()
	if c.state == StateTerminating || c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.state = StateProcessing
	c.mu.Unlock()

	logger.Debug("session %s command: %q", c.Session.ID, raw)

	result := wopr.Classify(raw)
	switch result.Mode {
	case wopr.ModeCanned:
		for _, msg := range result.Messages {
			c.emit(msg)
		}
		c.setIdle()

	case wopr.ModeDelayed:
		for _, msg := range result.Messages {
			c.emit(msg)
		}
		followup := result.Followup
		c.schedule(result.Delay, func() {
			c.emit(followup)
		})
		c.setIdle()

	case wopr.ModeTerminate:
		for _, msg := range result.Messages {
			c.emit(msg)
		}
		c.mu.Lock()
		c.state = StateTerminating
		c.mu.Unlock()
		c.schedule(result.Delay, func() {
			logger.Info("session logout: %s", c.Session.ID)
			c.conn.Close()
		})

	case wopr.ModeInference:
		prompt := result.Prompt
		go c.runInference(prompt)
	}
}

func (c *Controller) runInference(prompt string) {
	text, err := c.gateway.Complete(context.Background(), wopr.SystemPrompt, prompt)
	if err != nil {
		// The character never surfaces an error; it just gets evasive.
		logger.Error("session %s inference failed: %v", c.Session.ID, err)
		c.emit(protocol.NewWoprMessage(wopr.Fallback()))
		c.setIdle()
		return
	}

	c.emit(protocol.NewWoprMessage(strings.ToUpper(text)))
	c.setIdle()
}

// HandleDisconnect releases the session. Safe to call from any state
// and more than once.
func (c *Controller) HandleDisconnect() {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.state = StateClosed
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	logger.Info("session disconnected: %s", c.Session.ID)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setIdle() {
	c.mu.Lock()
	if c.state == StateProcessing {
		c.state = StateIdle
	}
	c.mu.Unlock()
}

// emit delivers one message unless the session is already closed.
func (c *Controller) emit(msg protocol.Message) {
	c.mu.Lock()
	closed := c.state == StateClosed
	c.mu.Unlock()
	if closed {
		return
	}
	if msg.Timestamp.IsZero() {
		msg = msg.WithTimestamp(time.Now())
	}
	c.conn.Send(msg)
}

// schedule registers a timer whose callback is skipped once the session
// has closed, even if Stop loses the race with the firing goroutine.
func (c *Controller) schedule(d time.Duration, f func()) {
	guarded := func() {
		c.mu.Lock()
		closed := c.state == StateClosed
		c.mu.Unlock()
		if closed {
			return
		}
		f()
	}

	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	t := c.clock.AfterFunc(d, guarded)
	c.timers = append(c.timers, t)
	c.mu.Unlock()
}
