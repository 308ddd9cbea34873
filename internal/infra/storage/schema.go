// Package storage инициализация схемы встраиваемой БД
// Внешнего мигратора нет - таблицы создаются при старте сервиса
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS appointments (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	client_name TEXT    NOT NULL,
	phone       TEXT    NOT NULL,
	service     TEXT    NOT NULL,
	start_at    TIMESTAMP NOT NULL,
	end_at      TIMESTAMP NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_appointments_start_at ON appointments (start_at);
CREATE INDEX IF NOT EXISTS idx_appointments_end_at ON appointments (end_at);

CREATE TABLE IF NOT EXISTS blocked_dates (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	date   TEXT NOT NULL UNIQUE,
	reason TEXT
);
`

// Migrate создает таблицы и индексы, если их еще нет
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("storage: failed to apply schema: %w", err)
	}
	return nil
}
