package repository

import (
	"context"
	"database/sql"
	"time"
)

// Record is one stored row.
type Record struct {
	ID        string
	Name      string
	Surname   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordRepo handles records.
type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

func (r *RecordRepo) Upsert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO records(id, name, surname, created_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 surname=excluded.surname,
	 updated_at=CURRENT_TIMESTAMP;
	`, rec.ID, rec.Name, rec.Surname)
	return err
}

func (r *RecordRepo) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, surname, created_at, updated_at FROM records WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Name, &rec.Surname, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (r *RecordRepo) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, surname, created_at, updated_at FROM records ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Surname, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	return err
}
