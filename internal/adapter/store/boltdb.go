package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"promptmark/internal/domain"
)

var (
	bucketChats    = []byte("chats")
	bucketMessages = []byte("messages")
	bucketMeta     = []byte("meta")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketChats, bucketMessages, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type chatMeta struct {
	Title       string `json:"title"`
	SiteName    string `json:"site_name"`
	ThemeColor  string `json:"theme_color"`
	URL         string `json:"url"`
	Timestamp   int64  `json:"timestamp"`
	LastUpdated int64  `json:"last_updated"`
}

type messageRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Color     string `json:"color,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Index     int    `json:"index"`
}

// PutChat stores chat metadata and replaces its message list.
func (s *BoltStore) PutChat(chat domain.Chat) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := chatMeta{
			Title:       chat.Title,
			SiteName:    chat.SiteName,
			ThemeColor:  chat.ThemeColor,
			URL:         chat.URL,
			Timestamp:   chat.Timestamp.UnixMilli(),
			LastUpdated: chat.LastUpdated.UnixMilli(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketChats).Put([]byte(chat.ID), data); err != nil {
			return err
		}

		records := make([]messageRecord, 0, len(chat.Messages))
		for _, m := range chat.Messages {
			records = append(records, messageRecord{
				ID:        m.ID,
				Type:      string(m.Type),
				Content:   m.Content,
				Color:     m.Color,
				Timestamp: m.Timestamp.UnixMilli(),
				Index:     m.Index,
			})
		}
		msgData, err := json.Marshal(records)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMessages).Put([]byte(chat.ID), msgData)
	})
}

func (s *BoltStore) GetChat(id string) (domain.Chat, error) {
	var chat domain.Chat
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketChats).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", domain.ErrChatNotFound, id)
		}
		var err error
		chat, err = decodeChat(tx, []byte(id), data)
		return err
	})
	return chat, err
}

func (s *BoltStore) ListChats() ([]domain.Chat, error) {
	var chats []domain.Chat
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChats).ForEach(func(k, v []byte) error {
			chat, err := decodeChat(tx, k, v)
			if err != nil {
				return err
			}
			chats = append(chats, chat)
			return nil
		})
	})
	return chats, err
}

func (s *BoltStore) DeleteChat(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketChats).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(bucketMessages).Delete([]byte(id))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func decodeChat(tx *bbolt.Tx, id, data []byte) (domain.Chat, error) {
	var meta chatMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.Chat{}, fmt.Errorf("corrupt chat %s: %w", id, err)
	}

	chat := domain.Chat{
		ID:          string(id),
		Title:       meta.Title,
		SiteName:    meta.SiteName,
		ThemeColor:  meta.ThemeColor,
		URL:         meta.URL,
		Timestamp:   time.UnixMilli(meta.Timestamp),
		LastUpdated: time.UnixMilli(meta.LastUpdated),
		Messages:    []domain.Message{},
	}

	msgData := tx.Bucket(bucketMessages).Get(id)
	if msgData == nil {
		return chat, nil
	}
	var records []messageRecord
	if err := json.Unmarshal(msgData, &records); err != nil {
		return domain.Chat{}, fmt.Errorf("corrupt messages for chat %s: %w", id, err)
	}
	for _, r := range records {
		chat.Messages = append(chat.Messages, domain.Message{
			ID:        r.ID,
			Type:      domain.MessageType(r.Type),
			Content:   r.Content,
			Color:     r.Color,
			Timestamp: time.UnixMilli(r.Timestamp),
			Index:     r.Index,
		})
	}
	return chat, nil
}
