package signal

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// ReplaceAll swaps the whole batch atomically: readers never observe a mix
// of old and new collections.
func (r *PostgresRepo) ReplaceAll(ctx context.Context, signals []Signal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM signals`); err != nil {
		return err
	}

	// source is UNIQUE; a duplicate inside the batch keeps the first row.
	query := `INSERT INTO signals (title, source, collected_at, concepts) VALUES ($1, $2, $3, $4) ON CONFLICT (source) DO NOTHING`
	for _, s := range signals {
		if _, err := tx.ExecContext(ctx, query, s.Title, s.Source, s.CollectedAt, pq.Array(s.Concepts)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepo) List(ctx context.Context) ([]Signal, error) {
	query := `SELECT id, title, source, collected_at, concepts FROM signals ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signals []Signal
	for rows.Next() {
		var s Signal
		if err := rows.Scan(&s.ID, &s.Title, &s.Source, &s.CollectedAt, pq.Array(&s.Concepts)); err != nil {
			return nil, err
		}
		if s.Concepts == nil {
			s.Concepts = []string{}
		}
		signals = append(signals, s)
	}
	return signals, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM signals`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
