package ontology

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

func (r *PostgresRepo) Save(ctx context.Context, c *Concept) error {
	query := `INSERT INTO concepts (name, keywords) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET keywords = EXCLUDED.keywords
		RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, pq.Array(c.Keywords)).Scan(&c.ID)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Concept, error) {
	query := `SELECT id, name, keywords FROM concepts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var concepts []Concept
	for rows.Next() {
		var c Concept
		if err := rows.Scan(&c.ID, &c.Name, pq.Array(&c.Keywords)); err != nil {
			return nil, err
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM concepts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM concepts`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
