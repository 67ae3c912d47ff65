package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"guidance-service/internal/assessment"
	"guidance-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// defaultBankID is the question_bank row the service reads.
const defaultBankID = "default"

// BankLoader loads the question bank JSONB from Postgres.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context) (assessment.Bank, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_bank WHERE id=$1`, defaultBankID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	var bank assessment.Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}
	return bank, nil
}
