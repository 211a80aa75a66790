// Package service implements the reviews service: intake, moderation, and the
// trust summary endpoint over the pure aggregation core
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buyside/internal/core/trust"
	"buyside/internal/modkit/repokit"
	"buyside/internal/modkit/scope"
	perr "buyside/internal/platform/errors"
	agentsdom "buyside/internal/services/api/agents/domain"
	"buyside/internal/services/api/reviews/domain"
	"buyside/internal/services/api/reviews/repo"
)

// Config for the reviews service
type Config struct {
	HardLimit int
}

// Service implements domain.ReviewsPort
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cfg    Config

	// profiles receives per-source stats after intake and moderation so
	// review volume feeds back into authority scoring; nil skips the sync
	profiles agentsdom.ProfilesPort

	now func() time.Time
}

// New constructs the reviews service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{tx: tx, binder: binder, cfg: cfg, now: time.Now}
}

// WithProfiles injects the agents port for the scoring feedback sync
func (s *Service) WithProfiles(p agentsdom.ProfilesPort) *Service {
	s.profiles = p
	return s
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit files a review pending moderation. Internal reviews start unapproved;
// third-party feed rows arrive pre-approved because the feed import is the
// moderation step for those
func (s *Service) Submit(ctx context.Context, in domain.SubmitInput) (domain.Review, error) {
	src := domain.Source(in.Source)
	rv := domain.Review{
		ID:         uuid.NewString(),
		AgentID:    in.AgentID,
		Source:     src,
		Rating:     clampRating(in.Rating),
		Body:       in.Body,
		Author:     in.Author,
		IsApproved: src != trust.SourceInternal,
		CreatedAt:  s.now().UTC(),
	}

	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, rv)
	})
	if err != nil {
		return domain.Review{}, err
	}
	if err := s.syncProfile(ctx, rv.AgentID); err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

// Moderate applies approve/hide/weight changes
func (s *Service) Moderate(ctx context.Context, in domain.ModerateInput) (domain.Review, error) {
	if in.Approve == nil && in.Hide == nil && in.TrustWeight == nil {
		return domain.Review{}, perr.InvalidArgf("no moderation change supplied")
	}

	var out domain.Review
	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		rv, err := r.Get(ctx, in.ID)
		if err != nil {
			return err
		}
		if in.Approve != nil {
			rv.IsApproved = *in.Approve
		}
		if in.Hide != nil {
			rv.IsHidden = *in.Hide
		}
		if in.TrustWeight != nil {
			rv.TrustWeight = *in.TrustWeight
		}
		if actor, ok := scope.Get(ctx, "actor"); ok {
			rv.ModeratedBy = actor
		}
		if err := r.SetModeration(ctx, rv); err != nil {
			return err
		}
		out = rv
		return nil
	})
	if err != nil {
		return domain.Review{}, err
	}
	if err := s.syncProfile(ctx, out.AgentID); err != nil {
		return domain.Review{}, err
	}
	return out, nil
}

// syncProfile pushes eligible per-source stats into the agent profile.
// Internal reviews stay out of the push: they feed the trust blend, not
// the authority signals
func (s *Service) syncProfile(ctx context.Context, agentID string) error {
	if s.profiles == nil {
		return nil
	}
	stats, err := s.binder.Bind(s.tx).StatsByAgent(ctx, agentID)
	if err != nil {
		return err
	}
	push := make(map[string]agentsdom.ReviewStat, len(stats))
	for src, st := range stats {
		if src == string(trust.SourceInternal) {
			continue
		}
		push[src] = agentsdom.ReviewStat{Rating: st.Rating, Count: st.Count}
	}
	if len(push) == 0 {
		return nil
	}
	_, err = s.profiles.SyncReviewStats(ctx, agentID, push)
	return err
}

// List returns reviews for one agent
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Review, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}
	return s.binder.Bind(s.tx).ListByAgent(ctx, in.AgentID, in.IncludeAll, limit)
}

// Trust loads the eligible rows and blends them through the aggregation core.
// Eligibility (approved, not hidden) is enforced here, in the query, which is
// the caller-side precondition the core documents
func (s *Service) Trust(ctx context.Context, agentID string) (domain.TrustSummary, error) {
	eligible, err := s.binder.Bind(s.tx).ListEligible(ctx, agentID)
	if err != nil {
		return domain.TrustSummary{}, err
	}

	var external, internal []trust.Review
	for _, rv := range eligible {
		t := trust.Review{Source: rv.Source, Rating: rv.Rating, TrustWeight: rv.TrustWeight}
		if rv.Source == trust.SourceInternal {
			internal = append(internal, t)
		} else {
			external = append(external, t)
		}
	}

	sum := trust.Summarize(external, internal)
	return domain.TrustSummary{
		Score:         sum.Score,
		SourceBadges:  sum.Badges,
		ExternalCount: sum.ExternalCount,
		InternalCount: sum.InternalCount,
	}, nil
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
