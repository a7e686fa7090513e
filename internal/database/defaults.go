package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// SeedDefaults inserts the starter records into an empty database so the
// UI never opens on a blank list. A database that already has rows is left
// alone.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := []struct{ name, surname string }{
		{"Mickey", "Mouse"},
		{"Walt", "Disney"},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, s := range seed {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO records(id, name, surname) VALUES (?, ?, ?);
			`, uuid.NewString(), s.name, s.surname); err != nil {
				return err
			}
		}
		return nil
	})
}
