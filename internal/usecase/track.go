package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"promptmark/internal/adapter/site"
	"promptmark/internal/domain"
	"promptmark/internal/logging"
	"promptmark/internal/port"
)

// PreviewLength is the number of runes of message text kept in storage.
const PreviewLength = 150

// TrackUseCase records chat captures into the chat store.
type TrackUseCase struct {
	store  port.ChatStore
	sites  *site.Registry
	logger *logging.Logger
	now    func() time.Time
}

// NewTrackUseCase creates a new track use case.
func NewTrackUseCase(store port.ChatStore, sites *site.Registry, logger *logging.Logger) *TrackUseCase {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TrackUseCase{
		store:  store,
		sites:  sites,
		logger: logger,
		now:    time.Now,
	}
}

// TrackResult contains the results of a track operation.
type TrackResult struct {
	ChatID  string
	Added   int
	Updated int
	Skipped bool
}

// Track stores a transcript as the current state of its chat. The captured
// messages replace the stored ones; Added counts messages whose ID and
// index were both unseen. A transcript with no messages is ignored.
func (u *TrackUseCase) Track(t domain.Transcript) (*TrackResult, error) {
	s, pageURL, err := u.sites.Resolve(t.URL)
	if err != nil {
		return nil, err
	}

	now := u.now()
	chatID := s.ChatID(pageURL, now)
	result := &TrackResult{ChatID: chatID}

	if len(t.Messages) == 0 {
		u.logger.Debugf("no messages for chat %s, skipping", chatID)
		result.Skipped = true
		return result, nil
	}

	chat, err := u.store.GetChat(chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrChatNotFound) {
			return nil, fmt.Errorf("failed to load chat %s: %w", chatID, err)
		}
		chat = domain.Chat{ID: chatID}
	}

	known := make(map[string]bool, len(chat.Messages))
	slots := make(map[int]bool, len(chat.Messages))
	for _, m := range chat.Messages {
		known[m.ID] = true
		slots[m.Index] = true
	}

	// The capture is the whole visible conversation, so it replaces the
	// stored list. Regenerated replies take over their old slot.
	messages := make([]domain.Message, 0, len(t.Messages))
	for i, raw := range t.Messages {
		msg := newMessage(raw, i, s.MessagePrefix(), now)
		if known[msg.ID] || slots[msg.Index] {
			result.Updated++
		} else {
			result.Added++
		}
		messages = append(messages, msg)
	}
	chat.Messages = messages

	chat.Title = s.CleanTitle(t.Title)
	chat.SiteName = s.Name
	chat.ThemeColor = t.ThemeColor
	if chat.ThemeColor == "" {
		chat.ThemeColor = s.Color()
	}
	chat.URL = pageURL.String()
	chat.Timestamp = now
	chat.LastUpdated = now

	if err := u.store.PutChat(chat); err != nil {
		return nil, fmt.Errorf("failed to save chat %s: %w", chatID, err)
	}

	u.logger.Infof("saved %d messages for chat %s (%d new, %d updated)", len(chat.Messages), chatID, result.Added, result.Updated)
	return result, nil
}

func newMessage(raw domain.RawMessage, index int, prefix string, now time.Time) domain.Message {
	text := strings.TrimSpace(raw.Text)
	id := raw.ID
	if id == "" {
		id = MessageID(text, prefix, index)
	}
	return domain.Message{
		ID:        id,
		Type:      domain.ParseMessageType(raw.Role),
		Content:   Preview(text),
		Color:     raw.Color,
		Timestamp: now,
		Index:     index,
	}
}

// MessageID builds "<prefix>-<hash>-<index>" from message text, where hash
// is the first 8 hex digits of the 31-multiplier string hash over UTF-16
// code units.
func MessageID(text, prefix string, index int) string {
	return fmt.Sprintf("%s-%s-%d", prefix, HashString(text), index)
}

// HashString returns the 31-multiplier 32-bit hash of s as up to 8 hex digits.
func HashString(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	hex := strconv.FormatInt(abs, 16)
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return hex
}

// Preview truncates text to PreviewLength runes, marking the cut with "...".
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}
