// Package domain defines shared types for the analytics API surface
package domain

import (
	"context"
	"time"
)

// ViewEvent is one profile page view as written to ClickHouse
type ViewEvent struct {
	AgentID    string    `json:"agent_id"`
	Source     string    `json:"source"`
	Referrer   string    `json:"referrer"`
	VisitorHID string    `json:"visitor_hid"`
	ViewedAt   time.Time `json:"viewed_at"`
}

// DateRange is an inclusive day range in YYYY-MM-DD
type DateRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// TrackInput records one profile view
type TrackInput struct {
	AgentID    string `json:"agent_id" validate:"required,uuid4" example:"2f1a9c3e-7b6d-4e21-9f1a-0c3d5e7b9a11"`
	Source     string `json:"source,omitempty"      validate:"omitempty,oneof=directory search referral direct" example:"directory"`
	Referrer   string `json:"referrer,omitempty"    validate:"omitempty,max=512"`
	VisitorHID string `json:"visitor_hid,omitempty" validate:"omitempty,hexadecimal,max=64"`
}

// DailyInput requests per-day view counts for one agent
type DailyInput struct {
	AgentID string    `json:"agent_id" validate:"required,uuid4"`
	Range   DateRange `json:"range"    validate:"required"`
}

// DailyRow is one day of view counts
type DailyRow struct {
	Day      string `json:"day" example:"2026-08-14"`
	Views    uint64 `json:"views"`
	Visitors uint64 `json:"visitors"`
}

// TopInput requests the most viewed agents over a range
type TopInput struct {
	Range DateRange `json:"range" validate:"required"`
	Limit int       `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// TopRow is one agent in the most-viewed ranking
type TopRow struct {
	AgentID string `json:"agent_id"`
	Views   uint64 `json:"views"`
}

// AnalyticsPort is the service surface exposed to transports and other modules
type AnalyticsPort interface {
	Track(ctx context.Context, in TrackInput) error
	Daily(ctx context.Context, in DailyInput) ([]DailyRow, error)
	Top(ctx context.Context, in TopInput) ([]TopRow, error)
}
