package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

const createCareerHistorySQL = `
CREATE TABLE IF NOT EXISTS career_history (
	id         bigserial PRIMARY KEY,
	user_id    text NOT NULL,
	grade      integer NOT NULL,
	data       jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS career_history_user_idx ON career_history (user_id, created_at DESC)`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createCareerHistorySQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`DROP TABLE IF EXISTS career_history`)
			return err
		},
	)
}
