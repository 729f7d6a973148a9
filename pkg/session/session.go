package session

import (
	"time"

	"github.com/google/uuid"
)

// State tracks where a session is in its lifecycle.
type State int

const (
	StateConnecting State = iota
	StateGreeting
	StateIdle
	StateProcessing
	StateTerminating
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateGreeting:
		return "greeting"
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateTerminating:
		return "terminating"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is one connection's server-side state. Nothing survives the
// connection: a reconnecting client starts from scratch.
type Session struct {
	ID          string
	ConnectedAt time.Time
}

func newSession() Session {
	return Session{
		ID:          uuid.NewString(),
		ConnectedAt: time.Now(),
	}
}
