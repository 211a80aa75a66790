// Package repo provides postgres access for reviews
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"buyside/internal/modkit/repokit"
	perr "buyside/internal/platform/errors"
	"buyside/internal/services/api/reviews/domain"
)

// Repo is the reviews persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, rv domain.Review) error
	Get(ctx context.Context, id string) (domain.Review, error)
	SetModeration(ctx context.Context, rv domain.Review) error
	ListByAgent(ctx context.Context, agentID string, includeAll bool, limit int) ([]domain.Review, error)
	// ListEligible returns approved, non-hidden reviews for trust blending
	ListEligible(ctx context.Context, agentID string) ([]domain.Review, error)
	// StatsByAgent folds per-source counts and averages over eligible rows.
	// A source whose rows are all hidden or unapproved comes back with
	// Count 0 so a stale profile signal gets cleared
	StatsByAgent(ctx context.Context, agentID string) (map[string]domain.SourceStat, error)
}

type (
	// PG is a Postgres implementation of the reviews repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const reviewCols = `
	id::text, agent_id::text, source, rating, body, author,
	trust_weight, is_approved, is_hidden, moderated_by, created_at`

// Insert stores a new review
func (r *queries) Insert(ctx context.Context, rv domain.Review) error {
	const sql = `
		INSERT INTO reviews (
			id, agent_id, source, rating, body, author,
			trust_weight, is_approved, is_hidden, moderated_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, sql,
		rv.ID, rv.AgentID, string(rv.Source), rv.Rating, rv.Body, rv.Author,
		rv.TrustWeight, rv.IsApproved, rv.IsHidden, rv.ModeratedBy, rv.CreatedAt,
	)
	return err
}

// Get loads one review by id
func (r *queries) Get(ctx context.Context, id string) (domain.Review, error) {
	sql := `SELECT ` + reviewCols + ` FROM reviews WHERE id = $1`

	var rv domain.Review
	var src string
	row := r.q.QueryRow(ctx, sql, id)
	err := row.Scan(
		&rv.ID, &rv.AgentID, &src, &rv.Rating, &rv.Body, &rv.Author,
		&rv.TrustWeight, &rv.IsApproved, &rv.IsHidden, &rv.ModeratedBy, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, perr.NotFoundf("review %s not found", id)
		}
		return domain.Review{}, err
	}
	rv.Source = domain.Source(src)
	return rv, nil
}

// SetModeration updates the moderation flags, trust weight, and audit stamp
func (r *queries) SetModeration(ctx context.Context, rv domain.Review) error {
	const sql = `
		UPDATE reviews
		SET is_approved = $2, is_hidden = $3, trust_weight = $4, moderated_by = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, sql, rv.ID, rv.IsApproved, rv.IsHidden, rv.TrustWeight, rv.ModeratedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("review %s not found", rv.ID)
	}
	return nil
}

// ListByAgent lists reviews for one agent, newest first
func (r *queries) ListByAgent(
	ctx context.Context,
	agentID string,
	includeAll bool,
	limit int,
) ([]domain.Review, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`SELECT ` + reviewCols + ` FROM reviews WHERE agent_id = ` + arg(agentID))
	if !includeAll {
		sb.WriteString(` AND is_approved AND NOT is_hidden`)
	}
	sb.WriteString(` ORDER BY created_at DESC LIMIT ` + arg(limit))

	return r.scanList(ctx, sb.String(), args...)
}

// ListEligible returns the rows the trust aggregator may see
func (r *queries) ListEligible(ctx context.Context, agentID string) ([]domain.Review, error) {
	sql := `SELECT ` + reviewCols + `
		FROM reviews
		WHERE agent_id = $1 AND is_approved AND NOT is_hidden
		ORDER BY created_at DESC`
	return r.scanList(ctx, sql, agentID)
}

// StatsByAgent summarizes eligible reviews per source
func (r *queries) StatsByAgent(ctx context.Context, agentID string) (map[string]domain.SourceStat, error) {
	const sql = `
		SELECT
			source,
			count(*) FILTER (WHERE is_approved AND NOT is_hidden),
			coalesce(avg(rating) FILTER (WHERE is_approved AND NOT is_hidden), 0)
		FROM reviews
		WHERE agent_id = $1
		GROUP BY source`

	rows, err := r.q.Query(ctx, sql, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.SourceStat)
	for rows.Next() {
		var src string
		var st domain.SourceStat
		if err := rows.Scan(&src, &st.Count, &st.Rating); err != nil {
			return nil, err
		}
		out[src] = st
	}
	return out, rows.Err()
}

func (r *queries) scanList(ctx context.Context, sql string, args ...any) ([]domain.Review, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var src string
		if err := rows.Scan(
			&rv.ID, &rv.AgentID, &src, &rv.Rating, &rv.Body, &rv.Author,
			&rv.TrustWeight, &rv.IsApproved, &rv.IsHidden, &rv.ModeratedBy, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		rv.Source = domain.Source(src)
		out = append(out, rv)
	}
	return out, rows.Err()
}
