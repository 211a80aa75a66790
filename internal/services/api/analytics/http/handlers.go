// Package http provides http transport for directory analytics
package http

import (
	stdhttp "net/http"

	"buyside/internal/modkit/httpkit"
	"buyside/internal/services/api/analytics/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s domain.AnalyticsPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.TrackInput](r, "/track", h.track)
	httpkit.PostJSON[domain.DailyInput](r, "/daily", h.daily)
	httpkit.PostJSON[domain.TopInput](r, "/top", h.top)
}

type handlers struct{ svc domain.AnalyticsPort }

// TrackAck confirms an event write
type TrackAck struct {
	Recorded bool `json:"recorded"`
}

// swagger:route POST /analytics/track Analytics analyticsTrack
// @Summary Record a profile page view
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.TrackInput true "Event"
// @Success 200 {object} TrackAck "ok"
// @Router /analytics/track [post]
func (h *handlers) track(r *stdhttp.Request, in domain.TrackInput) (any, error) {
	if err := h.svc.Track(r.Context(), in); err != nil {
		return nil, err
	}
	return TrackAck{Recorded: true}, nil
}

// swagger:route POST /analytics/daily Analytics analyticsDaily
// @Summary Per-day view counts for one agent
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.DailyInput true "Range"
// @Success 200 {array} domain.DailyRow "ok"
// @Router /analytics/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.DailyInput) (any, error) {
	return h.svc.Daily(r.Context(), in)
}

// swagger:route POST /analytics/top Analytics analyticsTop
// @Summary Most viewed agents over a range
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.TopInput true "Range"
// @Success 200 {array} domain.TopRow "ok"
// @Router /analytics/top [post]
func (h *handlers) top(r *stdhttp.Request, in domain.TopInput) (any, error) {
	return h.svc.Top(r.Context(), in)
}
