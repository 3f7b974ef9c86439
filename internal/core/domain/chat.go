package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrChatBusy     = errors.New("chat is busy, try again later")
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one line of a chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
