// Package repo provides postgres access for enquiries
package repo

import (
	"context"

	"buyside/internal/modkit/repokit"
	"buyside/internal/services/api/enquiries/domain"
)

// Repo is the enquiries persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, e domain.Enquiry) error
	ListByAgent(ctx context.Context, agentID string, limit int) ([]domain.Enquiry, error)
}

type (
	// PG is a Postgres implementation of the enquiries repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Insert stores a new enquiry
func (r *queries) Insert(ctx context.Context, e domain.Enquiry) error {
	const sql = `
		INSERT INTO enquiries (id, agent_id, name, email, phone, budget, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, sql,
		e.ID, e.AgentID, e.Name, e.Email, e.Phone, e.Budget, e.Message, e.CreatedAt,
	)
	return err
}

// ListByAgent lists enquiries for one agent, newest first
func (r *queries) ListByAgent(ctx context.Context, agentID string, limit int) ([]domain.Enquiry, error) {
	const sql = `
		SELECT id::text, agent_id::text, name, email, phone, budget, message, created_at
		FROM enquiries
		WHERE agent_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, sql, agentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Enquiry
	for rows.Next() {
		var e domain.Enquiry
		if err := rows.Scan(
			&e.ID, &e.AgentID, &e.Name, &e.Email, &e.Phone, &e.Budget, &e.Message, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
