package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrUnsupportedSite = errors.New("unsupported chat site")
	ErrInvalidPage     = errors.New("not a chat page")
)

type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageAssistant MessageType = "assistant"
	MessageSystem    MessageType = "system"
)

// ParseMessageType maps a transcript role onto a MessageType.
// Unknown roles are treated as system messages.
func ParseMessageType(role string) MessageType {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "user", "human", "me":
		return MessageUser
	case "assistant", "model", "ai", "bot":
		return MessageAssistant
	default:
		return MessageSystem
	}
}

type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Color     string      `json:"color,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Index     int         `json:"index"`
}

type Chat struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SiteName    string    `json:"site_name"`
	ThemeColor  string    `json:"theme_color"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
	LastUpdated time.Time `json:"last_updated"`
	Messages    []Message `json:"messages"`
}

// Bookmark is a chat summary without its messages.
type Bookmark struct {
	ChatID       string    `json:"chat_id"`
	Title        string    `json:"title"`
	SiteName     string    `json:"site_name"`
	ThemeColor   string    `json:"theme_color"`
	URL          string    `json:"url"`
	Timestamp    time.Time `json:"timestamp"`
	LastUpdated  time.Time `json:"last_updated"`
	MessageCount int       `json:"message_count"`
}

func (c Chat) Bookmark() Bookmark {
	return Bookmark{
		ChatID:       c.ID,
		Title:        c.Title,
		SiteName:     c.SiteName,
		ThemeColor:   c.ThemeColor,
		URL:          c.URL,
		Timestamp:    c.Timestamp,
		LastUpdated:  c.LastUpdated,
		MessageCount: len(c.Messages),
	}
}

// OutlineEntry pairs a stored message with keywords derived at read time.
type OutlineEntry struct {
	Message  Message  `json:"message"`
	Keywords []string `json:"keywords"`
}

// RawMessage is a message as captured from a chat page or transcript,
// before it is assigned an ID and preview.
type RawMessage struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Role  string `json:"role" yaml:"role"`
	Text  string `json:"text" yaml:"text"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Transcript is one capture of a chat page.
type Transcript struct {
	URL        string       `json:"url" yaml:"url"`
	Title      string       `json:"title" yaml:"title"`
	ThemeColor string       `json:"theme_color,omitempty" yaml:"theme_color,omitempty"`
	Messages   []RawMessage `json:"messages" yaml:"messages"`
}
