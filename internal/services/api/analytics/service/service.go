// Package service implements directory analytics over the ClickHouse store
package service

import (
	"context"
	"time"

	"buyside/internal/modkit/repokit"
	perr "buyside/internal/platform/errors"
	"buyside/internal/services/api/analytics/domain"
	"buyside/internal/services/api/analytics/repo"
)

// Config for the analytics service
type Config struct {
	TopLimit int
}

// Service implements domain.AnalyticsPort
type Service struct {
	store repo.Repo
	cfg   Config

	now func() time.Time
}

// New constructs the analytics service
func New(binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.TopLimit <= 0 {
		cfg.TopLimit = 10
	}
	return &Service{
		store: binder.Bind(nil),
		cfg:   cfg,
		now:   time.Now,
	}
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Track records one profile view
func (s *Service) Track(ctx context.Context, in domain.TrackInput) error {
	src := in.Source
	if src == "" {
		src = "direct"
	}
	return s.store.WriteView(ctx, domain.ViewEvent{
		AgentID:    in.AgentID,
		Source:     src,
		Referrer:   in.Referrer,
		VisitorHID: in.VisitorHID,
		ViewedAt:   s.now().UTC(),
	})
}

// Daily returns per-day view counts for one agent
func (s *Service) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	start, end, err := rangeBounds(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.DailyViews(ctx, in.AgentID, start, end)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.DailyRow{}
	}
	return rows, nil
}

// Top returns the most viewed agents over the range
func (s *Service) Top(ctx context.Context, in domain.TopInput) ([]domain.TopRow, error) {
	start, end, err := rangeBounds(in.Range)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.TopLimit {
		limit = s.cfg.TopLimit
	}
	return s.store.TopAgents(ctx, start, end, limit)
}

// rangeBounds converts an inclusive day range to [start, endExclusive)
func rangeBounds(r domain.DateRange) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, perr.InvalidArgf("bad range start %q", r.Start)
	}
	endIncl, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return time.Time{}, time.Time{}, perr.InvalidArgf("bad range end %q", r.End)
	}
	if endIncl.Before(start) {
		return time.Time{}, time.Time{}, perr.InvalidArgf("range end before start")
	}
	return start, endIncl.Add(24 * time.Hour), nil
}
