package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"promptmark/internal/domain"
	"promptmark/internal/port"
)

// BookmarkUseCase lists, outlines and deletes tracked chats.
type BookmarkUseCase struct {
	store     port.ChatStore
	extractor port.KeywordExtractor
}

// NewBookmarkUseCase creates a new bookmark use case.
func NewBookmarkUseCase(store port.ChatStore, extractor port.KeywordExtractor) *BookmarkUseCase {
	return &BookmarkUseCase{
		store:     store,
		extractor: extractor,
	}
}

// List returns every tracked chat whose title or site name contains search
// (case-insensitive), newest first.
func (u *BookmarkUseCase) List(search string) ([]domain.Bookmark, error) {
	chats, err := u.store.ListChats()
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	bookmarks := make([]domain.Bookmark, 0, len(chats))
	for _, chat := range chats {
		if term != "" &&
			!strings.Contains(strings.ToLower(chat.Title), term) &&
			!strings.Contains(strings.ToLower(chat.SiteName), term) {
			continue
		}
		bookmarks = append(bookmarks, chat.Bookmark())
	}

	sort.SliceStable(bookmarks, func(i, j int) bool {
		if bookmarks[i].Timestamp.Equal(bookmarks[j].Timestamp) {
			return bookmarks[i].ChatID < bookmarks[j].ChatID
		}
		return bookmarks[i].Timestamp.After(bookmarks[j].Timestamp)
	})
	return bookmarks, nil
}

// MessageFilter narrows the messages of a chat. An empty Type (or "all")
// keeps every type.
type MessageFilter struct {
	Type   string
	Search string
}

func (f MessageFilter) typeMatches(m domain.Message) bool {
	t := strings.ToLower(strings.TrimSpace(f.Type))
	return t == "" || t == "all" || domain.MessageType(t) == m.Type
}

// Messages returns the messages of a chat in chronological order. Unknown
// chats have no messages.
func (u *BookmarkUseCase) Messages(chatID string, filter MessageFilter) ([]domain.Message, error) {
	chat, err := u.store.GetChat(chatID)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			return []domain.Message{}, nil
		}
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	msgs := make([]domain.Message, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		if !filter.typeMatches(m) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Content), term) {
			continue
		}
		msgs = append(msgs, m)
	}

	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Index < msgs[j].Index })
	return msgs, nil
}

// Outline returns the messages of a chat with their keywords. A non-empty
// search keeps messages having a keyword that starts with it.
func (u *BookmarkUseCase) Outline(chatID string, filter MessageFilter) ([]domain.OutlineEntry, error) {
	msgs, err := u.Messages(chatID, MessageFilter{Type: filter.Type})
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	entries := make([]domain.OutlineEntry, 0, len(msgs))
	for _, m := range msgs {
		keywords := u.extractor.Extract(m.Content)
		if term != "" && !hasKeywordPrefix(keywords, term) {
			continue
		}
		entries = append(entries, domain.OutlineEntry{Message: m, Keywords: keywords})
	}
	return entries, nil
}

// Delete removes a chat. Deleting an unknown chat is not an error.
func (u *BookmarkUseCase) Delete(chatID string) error {
	if err := u.store.DeleteChat(chatID); err != nil {
		return fmt.Errorf("failed to delete chat %s: %w", chatID, err)
	}
	return nil
}

// Clear removes every bookmarked chat.
func (u *BookmarkUseCase) Clear() error {
	if err := u.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear chats: %w", err)
	}
	return nil
}

func hasKeywordPrefix(keywords []string, prefix string) bool {
	for _, k := range keywords {
		if strings.HasPrefix(strings.ToLower(k), prefix) {
			return true
		}
	}
	return false
}
