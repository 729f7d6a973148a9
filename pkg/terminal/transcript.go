package terminal

import (
	"strings"

	"github.com/tinymachines/wopr/pkg/protocol"
)

// Transcript is the scrollback of fully-delivered messages. Partially
// revealed text lives in the Typewriter until it completes.
type Transcript struct {
	Messages []protocol.Message
}

func NewTranscript() Transcript {
	return Transcript{}
}

func (t Transcript) Append(msg protocol.Message) Transcript {
	messages := make([]protocol.Message, len(t.Messages), len(t.Messages)+1)
	copy(messages, t.Messages)
	return Transcript{Messages: append(messages, msg)}
}

// Lines flattens the transcript for rendering: one entry per display
// line, multi-line messages split apart, each line tagged with its
// message type.
func (t Transcript) Lines() []Line {
	var lines []Line
	for _, msg := range t.Messages {
		for _, text := range strings.Split(msg.Text, "\n") {
			lines = append(lines, Line{Text: text, Type: msg.Type})
		}
	}
	return lines
}

// Line is one renderable row of the transcript.
type Line struct {
	Text string
	Type string
}
