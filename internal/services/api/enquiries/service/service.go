// Package service implements enquiry intake and dashboard listing
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buyside/internal/modkit/repokit"
	"buyside/internal/services/api/enquiries/domain"
	"buyside/internal/services/api/enquiries/repo"
)

// Config for the enquiries service
type Config struct {
	HardLimit int
}

// Service implements domain.EnquiriesPort
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cfg    Config

	now func() time.Time
}

// New constructs the enquiries service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{tx: tx, binder: binder, cfg: cfg, now: time.Now}
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit stores a buyer enquiry
func (s *Service) Submit(ctx context.Context, in domain.SubmitInput) (domain.Enquiry, error) {
	e := domain.Enquiry{
		ID:        uuid.NewString(),
		AgentID:   in.AgentID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Budget:    in.Budget,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, e)
	})
	if err != nil {
		return domain.Enquiry{}, err
	}
	return e, nil
}

// List returns an agent's enquiries
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Enquiry, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}
	return s.binder.Bind(s.tx).ListByAgent(ctx, in.AgentID, limit)
}
