package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// exercises.hiit_id has no foreign key on purpose: an exercise may be added
// for a hiit id the store does not know about.
var initQueries = []string{
	`
CREATE TABLE IF NOT EXISTS hiits
(
    seq         BIGSERIAL UNIQUE,
    hiits_id    TEXT PRIMARY KEY,
    name        TEXT NOT NULL CHECK (name <> ''),
    description TEXT NOT NULL CHECK (description <> ''),
    type        TEXT NOT NULL CHECK (type IN ('default', 'custom'))
)`,
	`
CREATE TABLE IF NOT EXISTS exercises
(
    exercise_id       SERIAL PRIMARY KEY,
    name              TEXT    NOT NULL CHECK (name <> ''),
    description       TEXT    NOT NULL CHECK (description <> ''),
    exercise_duration INTEGER NOT NULL CHECK (exercise_duration > 0),
    rest_duration     INTEGER NOT NULL CHECK (rest_duration > 0),
    hiit_id           TEXT    NOT NULL
)`,
	"CREATE INDEX IF NOT EXISTS ix_exercises_hiit_id ON exercises (hiit_id)",
}

// Migrate creates the hiits and exercises tables if they are missing.
func Migrate(ctx context.Context, db execer) error {
	for i, q := range initQueries {
		if _, err := db.Exec(ctx, q); err != nil {
			return fmt.Errorf("run init query %d: %w", i, err)
		}
	}
	log.Debugf("db schema ready, %d init queries run", len(initQueries))
	return nil
}
