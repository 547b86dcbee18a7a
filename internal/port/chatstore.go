package port

import "promptmark/internal/domain"

// ChatStore persists tracked chats. GetChat returns domain.ErrChatNotFound
// for unknown IDs.
type ChatStore interface {
	PutChat(chat domain.Chat) error

	GetChat(id string) (domain.Chat, error)

	ListChats() ([]domain.Chat, error)

	DeleteChat(id string) error

	// Clear removes every chat.
	Clear() error

	Close() error
}
