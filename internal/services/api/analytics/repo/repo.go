// Package repo provides the analytics storage implementation over ClickHouse
package repo

import (
	"context"
	"time"

	"buyside/internal/modkit/repokit"
	"buyside/internal/platform/store"
	"buyside/internal/services/api/analytics/domain"
)

// Repo defines the analytics repository
type Repo interface {
	WriteView(ctx context.Context, ev domain.ViewEvent) error
	DailyViews(ctx context.Context, agentID string, start, end time.Time) ([]domain.DailyRow, error)
	TopAgents(ctx context.Context, start, end time.Time, limit int) ([]domain.TopRow, error)
}

// NewHybrid returns a binder backed by ClickHouse; the bound Queryer is
// unused here but keeps the module on the same seam as the PG-backed ones
func NewHybrid(ch store.Clickhouse) repokit.Binder[Repo] { return &hybridBinder{ch: ch} }

type hybridBinder struct{ ch store.Clickhouse }

// Bind implements repokit.Binder
func (b *hybridBinder) Bind(_ repokit.Queryer) Repo { return &chStore{ch: b.ch} }

type chStore struct{ ch store.Clickhouse }

// WriteView appends one view event to buyside.profile_views
func (s *chStore) WriteView(ctx context.Context, ev domain.ViewEvent) error {
	rows := [][]any{{
		ev.AgentID, ev.Source, ev.Referrer, ev.VisitorHID, ev.ViewedAt.UTC(),
	}}
	return s.ch.Insert(ctx, "buyside.profile_views", rows)
}

// DailyViews returns per-day view and distinct-visitor counts for one agent
func (s *chStore) DailyViews(
	ctx context.Context,
	agentID string,
	start, end time.Time,
) ([]domain.DailyRow, error) {
	rs, err := s.ch.Query(ctx, `
		SELECT
			formatDateTime(toDate(viewed_at), '%Y-%m-%d') AS day,
			count()                                        AS views,
			uniqCombined(12)(visitor_hid)                  AS visitors
		FROM buyside.profile_views
		WHERE agent_id = ? AND viewed_at >= ? AND viewed_at < ?
		GROUP BY day
		ORDER BY day ASC`,
		agentID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []domain.DailyRow
	for rs.Next() {
		var row domain.DailyRow
		if err := rs.Scan(&row.Day, &row.Views, &row.Visitors); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rs.Err()
}

// TopAgents ranks agents by view count over the range
func (s *chStore) TopAgents(
	ctx context.Context,
	start, end time.Time,
	limit int,
) ([]domain.TopRow, error) {
	rs, err := s.ch.Query(ctx, `
		SELECT agent_id, count() AS views
		FROM buyside.profile_views
		WHERE viewed_at >= ? AND viewed_at < ?
		GROUP BY agent_id
		ORDER BY views DESC, agent_id ASC
		LIMIT ?`,
		start, end, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	out := make([]domain.TopRow, 0, limit)
	for rs.Next() {
		var row domain.TopRow
		if err := rs.Scan(&row.AgentID, &row.Views); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rs.Err()
}
