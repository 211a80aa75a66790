// Package service implements the agents service: profile writes merge the
// stored row with the caller's changes, re-derive the scoring patch through
// the authority engine, and persist both in one transaction
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buyside/internal/core/authority"
	"buyside/internal/core/signal"
	"buyside/internal/modkit/repokit"
	"buyside/internal/services/api/agents/domain"
	"buyside/internal/services/api/agents/repo"
)

// Config for the agents service
type Config struct {
	DirectoryLimit int
}

// Service implements domain.ProfilesPort
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	engine *authority.Engine
	cfg    Config

	// now is a seam for tests; the scoring core itself never reads the clock
	now func() time.Time
}

// New constructs the agents service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.DirectoryLimit <= 0 {
		cfg.DirectoryLimit = 25
	}
	return &Service{
		tx:     tx,
		binder: binder,
		engine: authority.New(),
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock overrides the timestamp source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new unclaimed, unverified profile with derived fields
// computed from whatever signals the operator supplied
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (domain.Agent, error) {
	now := s.now().UTC()

	a := domain.Agent{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Agency:              in.Agency,
		Email:               in.Email,
		Bio:                 in.Bio,
		FeeStructure:        in.FeeStructure,
		Suburbs:             in.Suburbs,
		Specializations:     in.Specializations,
		YearsExperience:     in.YearsExperience,
		PropertiesPurchased: in.PropertiesPurchased,
		Social:              in.Social,
		ReviewSignals:       in.ReviewSignals,
		Verified:            string(signal.Unverified),
		ProfileStatus:       string(signal.Unclaimed),
		CreatedAt:           now,
	}
	applyPatch(&a, s.rescore(a, now))

	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, a)
	})
	if err != nil {
		return domain.Agent{}, err
	}
	return a, nil
}

// Get loads one profile
func (s *Service) Get(ctx context.Context, id string) (domain.Agent, error) {
	return s.binder.Bind(s.tx).Get(ctx, id)
}

// Update merges the caller's field changes into the stored row, recomputes
// the derived patch, and writes both atomically
func (s *Service) Update(ctx context.Context, in domain.UpdateInput) (domain.Agent, error) {
	var out domain.Agent
	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		a, err := r.Get(ctx, in.ID)
		if err != nil {
			return err
		}
		merge(&a, in)

		now := s.now().UTC()
		applyPatch(&a, s.rescore(a, now))

		if err := r.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// Claim marks the profile claimed; reconciliation backfills ClaimedAt
func (s *Service) Claim(ctx context.Context, id string) (domain.Agent, error) {
	return s.transition(ctx, id, func(a *domain.Agent) {
		a.ProfileStatus = string(signal.Claimed)
	})
}

// Verify toggles operator verification; tier re-derives under the gate
func (s *Service) Verify(ctx context.Context, id string, verified bool) (domain.Agent, error) {
	return s.transition(ctx, id, func(a *domain.Agent) {
		if verified {
			a.Verified = string(signal.Verified)
		} else {
			a.Verified = string(signal.Unverified)
		}
	})
}

// Recompute re-derives the patch without touching caller-owned fields
func (s *Service) Recompute(ctx context.Context, id string) (domain.Agent, error) {
	return s.transition(ctx, id, func(*domain.Agent) {})
}

// SyncReviewStats overlays fresh per-source rating summaries onto the stored
// signals and re-derives the patch. The reviews module calls this after
// intake and moderation so review volume feeds back into scoring
func (s *Service) SyncReviewStats(
	ctx context.Context,
	id string,
	stats map[string]domain.ReviewStat,
) (domain.Agent, error) {
	return s.transition(ctx, id, func(a *domain.Agent) {
		if a.ReviewSignals == nil {
			a.ReviewSignals = make(map[string]domain.ReviewStat, len(stats))
		}
		for source, st := range stats {
			a.ReviewSignals[source] = st
		}
	})
}

// Directory lists public profiles
func (s *Service) Directory(ctx context.Context, in domain.DirectoryInput) ([]domain.DirectoryRow, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.DirectoryLimit {
		limit = s.cfg.DirectoryLimit
	}
	return s.binder.Bind(s.tx).Directory(ctx, in.Tier, in.Suburb, limit)
}

// ListIDs returns all profile ids
func (s *Service) ListIDs(ctx context.Context) ([]string, error) {
	return s.binder.Bind(s.tx).ListIDs(ctx)
}

// transition loads, mutates, rescores, and saves one profile in a transaction
func (s *Service) transition(
	ctx context.Context,
	id string,
	mutate func(*domain.Agent),
) (domain.Agent, error) {
	var out domain.Agent
	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		a, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		mutate(&a)

		now := s.now().UTC()
		applyPatch(&a, s.rescore(a, now))

		if err := r.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// rescore runs the merged row through the normalizer and authority engine.
// Round-tripping through the untyped record keeps one validation path for
// form edits, claims, and bulk rows alike
func (s *Service) rescore(a domain.Agent, now time.Time) authority.Patch {
	raw := map[string]any{
		"verified":             a.Verified,
		"profile_status":       a.ProfileStatus,
		"claimed_at":           a.ClaimedAt,
		"years_experience":     a.YearsExperience,
		"properties_purchased": a.PropertiesPurchased,
		"suburbs":              a.Suburbs,
		"specializations":      a.Specializations,
		"bio":                  a.Bio,
		"fee_structure":        a.FeeStructure,
	}
	for platform, n := range a.Social {
		raw[platform+"_followers"] = n
	}
	for platform, rs := range a.ReviewSignals {
		raw[platform+"_rating"] = rs.Rating
		raw[platform+"_review_count"] = rs.Count
	}
	return s.engine.ComputePatch(signal.Normalize(raw), now)
}

func applyPatch(a *domain.Agent, p authority.Patch) {
	a.TotalFollowers = p.TotalFollowers
	a.SocialPresence = string(p.SocialPresence)
	a.AuthorityScore = p.AuthorityScore
	a.Tier = string(p.Tier)

	a.Verified = string(p.Verified)
	a.ProfileStatus = string(p.Claim)
	a.ClaimedAt = p.ClaimedAt
	a.LastUpdated = p.LastUpdated
}

func merge(a *domain.Agent, in domain.UpdateInput) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Agency != nil {
		a.Agency = *in.Agency
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.Bio != nil {
		a.Bio = *in.Bio
	}
	if in.FeeStructure != nil {
		a.FeeStructure = *in.FeeStructure
	}
	if in.Suburbs != nil {
		a.Suburbs = *in.Suburbs
	}
	if in.Specializations != nil {
		a.Specializations = *in.Specializations
	}
	if in.YearsExperience != nil {
		a.YearsExperience = *in.YearsExperience
	}
	if in.PropertiesPurchased != nil {
		a.PropertiesPurchased = *in.PropertiesPurchased
	}
	if in.Social != nil {
		a.Social = *in.Social
	}
	if in.ReviewSignals != nil {
		a.ReviewSignals = *in.ReviewSignals
	}
}
