// Package repo provides postgres access for agent profiles
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"buyside/internal/modkit/repokit"
	perr "buyside/internal/platform/errors"
	tim "buyside/internal/platform/time"
	"buyside/internal/services/api/agents/domain"
)

// Repo is the agents persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, a domain.Agent) error
	Get(ctx context.Context, id string) (domain.Agent, error)
	Update(ctx context.Context, a domain.Agent) error
	Directory(ctx context.Context, tier, suburb string, limit int) ([]domain.DirectoryRow, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type (
	// PG is a Postgres implementation of the agents repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const agentCols = `
	id::text, name, agency, email, bio, fee_structure,
	suburbs, specializations, years_experience, properties_purchased,
	social, review_signals,
	verified, profile_status, claimed_at,
	total_followers, social_presence, authority_score, tier,
	last_updated, created_at`

// Insert stores a new profile with its initial derived fields.
// The legacy is_verified boolean is generated here, at the storage boundary;
// the scoring core only knows the enum
func (r *queries) Insert(ctx context.Context, a domain.Agent) error {
	social, signals, err := packJSON(a)
	if err != nil {
		return err
	}

	const sql = `
		INSERT INTO agents (
			id, name, agency, email, bio, fee_structure,
			suburbs, specializations, years_experience, properties_purchased,
			social, review_signals,
			verified, is_verified, profile_status, claimed_at,
			total_followers, social_presence, authority_score, tier,
			last_updated, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12,
			$13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22
		)`
	_, err = r.q.Exec(ctx, sql,
		a.ID, a.Name, a.Agency, a.Email, a.Bio, a.FeeStructure,
		a.Suburbs, a.Specializations, a.YearsExperience, a.PropertiesPurchased,
		social, signals,
		a.Verified, a.Verified == "verified", a.ProfileStatus, nullClaimedAt(a.ClaimedAt),
		a.TotalFollowers, a.SocialPresence, a.AuthorityScore, a.Tier,
		a.LastUpdated, a.CreatedAt,
	)
	return err
}

// Update rewrites a profile row including the recomputed derived fields
func (r *queries) Update(ctx context.Context, a domain.Agent) error {
	social, signals, err := packJSON(a)
	if err != nil {
		return err
	}

	const sql = `
		UPDATE agents SET
			name = $2, agency = $3, email = $4, bio = $5, fee_structure = $6,
			suburbs = $7, specializations = $8,
			years_experience = $9, properties_purchased = $10,
			social = $11, review_signals = $12,
			verified = $13, is_verified = $14, profile_status = $15, claimed_at = $16,
			total_followers = $17, social_presence = $18, authority_score = $19, tier = $20,
			last_updated = $21
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, sql,
		a.ID,
		a.Name, a.Agency, a.Email, a.Bio, a.FeeStructure,
		a.Suburbs, a.Specializations,
		a.YearsExperience, a.PropertiesPurchased,
		social, signals,
		a.Verified, a.Verified == "verified", a.ProfileStatus, nullClaimedAt(a.ClaimedAt),
		a.TotalFollowers, a.SocialPresence, a.AuthorityScore, a.Tier,
		a.LastUpdated,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("agent %s not found", a.ID)
	}
	return nil
}

// Get loads one profile by id
func (r *queries) Get(ctx context.Context, id string) (domain.Agent, error) {
	sql := `SELECT ` + agentCols + ` FROM agents WHERE id = $1`

	var a domain.Agent
	var social, signals []byte
	row := r.q.QueryRow(ctx, sql, id)
	err := row.Scan(
		&a.ID, &a.Name, &a.Agency, &a.Email, &a.Bio, &a.FeeStructure,
		&a.Suburbs, &a.Specializations, &a.YearsExperience, &a.PropertiesPurchased,
		&social, &signals,
		&a.Verified, &a.ProfileStatus, &a.ClaimedAt,
		&a.TotalFollowers, &a.SocialPresence, &a.AuthorityScore, &a.Tier,
		&a.LastUpdated, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Agent{}, perr.NotFoundf("agent %s not found", id)
		}
		return domain.Agent{}, err
	}
	if err := unpackJSON(social, signals, &a); err != nil {
		return domain.Agent{}, err
	}
	return a, nil
}

// Directory lists public profiles ordered by the derived fields
func (r *queries) Directory(
	ctx context.Context,
	tier, suburb string,
	limit int,
) ([]domain.DirectoryRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT id::text, name, agency, suburbs, tier, authority_score, social_presence, verified
		FROM agents
		WHERE 1 = 1`)
	if tier != "" {
		sb.WriteString(` AND tier = ` + arg(tier))
	}
	if suburb != "" {
		sb.WriteString(` AND ` + arg(suburb) + ` ILIKE ANY (suburbs)`)
	}
	sb.WriteString(` ORDER BY authority_score DESC, last_updated DESC LIMIT ` + arg(limit))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DirectoryRow
	for rows.Next() {
		var d domain.DirectoryRow
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Agency, &d.Suburbs,
			&d.Tier, &d.AuthorityScore, &d.SocialPresence, &d.Verified,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListIDs returns every profile id for batch rescoring
func (r *queries) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text FROM agents ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// nullClaimedAt folds a zero ClaimedAt to NULL; only unclaimed rows carry a
// NULL column and only claimed rows carry a real timestamp
func nullClaimedAt(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return tim.Ptr(*t)
}

func packJSON(a domain.Agent) (social, signals []byte, err error) {
	if social, err = json.Marshal(a.Social); err != nil {
		return nil, nil, err
	}
	if signals, err = json.Marshal(a.ReviewSignals); err != nil {
		return nil, nil, err
	}
	return social, signals, nil
}

func unpackJSON(social, signals []byte, a *domain.Agent) error {
	if len(social) > 0 {
		if err := json.Unmarshal(social, &a.Social); err != nil {
			return err
		}
	}
	if len(signals) > 0 {
		if err := json.Unmarshal(signals, &a.ReviewSignals); err != nil {
			return err
		}
	}
	return nil
}
