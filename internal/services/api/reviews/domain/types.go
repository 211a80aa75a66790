// Package domain defines the types and interfaces for the reviews service
package domain

import (
	"context"
	"time"

	"buyside/internal/core/trust"
)

// Review is one stored review row
type Review struct {
	ID      string `json:"id"`
	AgentID string `json:"agent_id"`

	Source Source  `json:"source"`
	Rating float64 `json:"rating"`
	Body   string  `json:"body,omitempty"`
	Author string  `json:"author,omitempty"`

	// TrustWeight overrides the per-source default when > 0
	TrustWeight float64 `json:"trust_weight,omitempty"`

	IsApproved bool `json:"is_approved"`
	IsHidden   bool `json:"is_hidden"`

	// ModeratedBy records the operator behind the last moderation change
	ModeratedBy string `json:"moderated_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Source aliases the core source enum so transport types stay plain
type Source = trust.Source

// SubmitInput files a new review pending moderation
type SubmitInput struct {
	AgentID string  `json:"agent_id" validate:"required,uuid4"`
	Source  string  `json:"source" validate:"required,oneof=internal ratemyagent google facebook trustpilot productreview"`
	Rating  float64 `json:"rating" validate:"min=0,max=5"`
	Body    string  `json:"body,omitempty" validate:"omitempty,max=4000"`
	Author  string  `json:"author,omitempty" validate:"omitempty,max=120"`
}

// ModerateInput approves or hides a review
type ModerateInput struct {
	ID       string `json:"id" validate:"required,uuid4"`
	Approve  *bool  `json:"approve,omitempty"`
	Hide     *bool  `json:"hide,omitempty"`
	// TrustWeight lets moderators down-weight a suspect feed without hiding it
	TrustWeight *float64 `json:"trust_weight,omitempty" validate:"omitempty,min=0,max=1"`
}

// TrustInput requests the blended trust summary for one agent
type TrustInput struct {
	AgentID string `json:"agent_id" validate:"required,uuid4"`
}

// ListInput lists reviews for one agent (moderation view)
type ListInput struct {
	AgentID     string `json:"agent_id" validate:"required,uuid4"`
	IncludeAll  bool   `json:"include_all,omitempty"` // hidden/unapproved too
	Limit       int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// TrustSummary mirrors the core summary with JSON field names
type TrustSummary struct {
	Score         int          `json:"score"`
	SourceBadges  []trust.Badge `json:"source_badges"`
	ExternalCount int          `json:"approved_external_count"`
	InternalCount int          `json:"approved_internal_count"`
}

// SourceStat is one source's eligible-review summary, pushed back into the
// agent profile as a scoring signal
type SourceStat struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// ReviewsPort is the reviews surface other modules consume
type ReviewsPort interface {
	Submit(ctx context.Context, in SubmitInput) (Review, error)
	Moderate(ctx context.Context, in ModerateInput) (Review, error)
	List(ctx context.Context, in ListInput) ([]Review, error)
	Trust(ctx context.Context, agentID string) (TrustSummary, error)
}
