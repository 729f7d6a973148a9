package protocol

import (
	"encoding/json"
	"fmt"
)

// Frame is the JSON envelope carried in one websocket text frame.
// The server only ever sends "message" events; the client only ever
// sends "command" events.
type Frame struct {
	Event   string  `json:"event"`
	Message Message `json:"message,omitempty"`
	Command string  `json:"command,omitempty"`
}

const (
	EventMessage = "message"
	EventCommand = "command"
)

func NewMessageFrame(msg Message) Frame {
	return Frame{
		Event:   EventMessage,
		Message: msg,
	}
}

func NewCommandFrame(command string) Frame {
	return Frame{
		Event:   EventCommand,
		Command: command,
	}
}

func (f Frame) Encode() ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses one inbound websocket payload. Unknown or missing
// event names are rejected so the caller can drop the frame.
func DecodeFrame(data []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	switch frame.Event {
	case EventMessage, EventCommand:
		return frame, nil
	default:
		return Frame{}, fmt.Errorf("unknown frame event: %q", frame.Event)
	}
}
