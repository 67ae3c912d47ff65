package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

const createQuestionBankSQL = `
CREATE TABLE IF NOT EXISTS question_bank (
	id   text PRIMARY KEY,
	data jsonb NOT NULL
)`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createQuestionBankSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`DROP TABLE IF EXISTS question_bank`)
			return err
		},
	)
}
