package protocol

import (
	"strings"
	"time"
)

type Message struct {
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

const (
	TypeSystem = "system"
	TypeWopr   = "wopr"
	TypeUser   = "user"
	TypeError  = "error"
)

func NewSystemMessage(text string) Message {
	return Message{
		Text:      text,
		Type:      TypeSystem,
		Timestamp: time.Now(),
	}
}

func NewWoprMessage(text string) Message {
	return Message{
		Text:      text,
		Type:      TypeWopr,
		Timestamp: time.Now(),
	}
}

func NewUserMessage(text string) Message {
	return Message{
		Text:      strings.TrimSpace(text),
		Type:      TypeUser,
		Timestamp: time.Now(),
	}
}

func NewErrorMessage(text string) Message {
	return Message{
		Text:      text,
		Type:      TypeError,
		Timestamp: time.Now(),
	}
}

func (m Message) IsSystem() bool {
	return m.Type == TypeSystem
}

func (m Message) IsWopr() bool {
	return m.Type == TypeWopr
}

func (m Message) IsUser() bool {
	return m.Type == TypeUser
}

func (m Message) IsError() bool {
	return m.Type == TypeError
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}

func (m Message) WithTimestamp(t time.Time) Message {
	return Message{
		Text:      m.Text,
		Type:      m.Type,
		Timestamp: t,
	}
}
