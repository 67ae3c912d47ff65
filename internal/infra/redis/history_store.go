package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"guidance-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// HistoryStore keeps each user's assessment history as a Redis list of JSON
// entries, newest first.
type HistoryStore struct {
	client *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	if err := s.client.LPush(ctx, s.key(entry.UserID), data).Err(); err != nil {
		return fmt.Errorf("push history entry: %w", err)
	}
	return nil
}

func (s *HistoryStore) List(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	raw, err := s.client.LRange(ctx, s.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *HistoryStore) key(userID string) string {
	return "assessment:history:" + userID
}
