package memstore

import (
	"fmt"
	"sync"

	"promptmark/internal/domain"
)

// MemoryStore is a ChatStore kept in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	chats map[string]domain.Chat
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chats: make(map[string]domain.Chat),
	}
}

func (s *MemoryStore) PutChat(chat domain.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[chat.ID] = cloneChat(chat)
	return nil
}

func (s *MemoryStore) GetChat(id string) (domain.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chat, ok := s.chats[id]
	if !ok {
		return domain.Chat{}, fmt.Errorf("%w: %s", domain.ErrChatNotFound, id)
	}
	return cloneChat(chat), nil
}

func (s *MemoryStore) ListChats() ([]domain.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chats := make([]domain.Chat, 0, len(s.chats))
	for _, chat := range s.chats {
		chats = append(chats, cloneChat(chat))
	}
	return chats, nil
}

func (s *MemoryStore) DeleteChat(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, id)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = make(map[string]domain.Chat)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func cloneChat(chat domain.Chat) domain.Chat {
	msgs := make([]domain.Message, len(chat.Messages))
	copy(msgs, chat.Messages)
	chat.Messages = msgs
	return chat
}
