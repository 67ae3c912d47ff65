package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"guidance-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// HistoryStore persists assessment outcomes in the career_history table.
type HistoryStore struct {
	pool *pgxpool.Pool
}

func NewHistoryStore(pool *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	data, err := json.Marshal(entry.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO career_history (user_id, grade, data, created_at) VALUES ($1, $2, $3, $4)`,
		entry.UserID, entry.Grade, data, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (s *HistoryStore) List(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT grade, data, created_at FROM career_history WHERE user_id=$1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		entry := domain.HistoryEntry{UserID: userID}
		var data []byte
		if err := rows.Scan(&entry.Grade, &data, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal(data, &entry.Recommendations); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
