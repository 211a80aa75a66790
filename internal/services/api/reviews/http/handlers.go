// Package http provides http transport for reviews
package http

import (
	stdhttp "net/http"

	"buyside/internal/modkit/httpkit"
	"buyside/internal/modkit/scope"
	"buyside/internal/platform/net/middleware"
	"buyside/internal/services/api/reviews/domain"
)

// Register mounts review endpoints on the given router.
// Moderation sits behind the operator auth port
func Register(r httpkit.Router, s domain.ReviewsPort, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SubmitInput](r, "/submit", h.submit)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.TrustInput](r, "/trust", h.trust)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.ModerateInput](pr, "/moderate", h.moderate)
	})
}

type handlers struct{ svc domain.ReviewsPort }

// swagger:route POST /reviews/submit Reviews reviewsSubmit
// @Summary Submit a review (internal reviews await moderation)
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Review"
// @Success 200 {object} domain.Review "ok"
// @Router /reviews/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), in)
}

// swagger:route POST /reviews/moderate Reviews reviewsModerate
// @Summary Approve, hide, or re-weight a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.ModerateInput true "Change"
// @Success 200 {object} domain.Review "ok"
// @Router /reviews/moderate [post]
func (h *handlers) moderate(r *stdhttp.Request, in domain.ModerateInput) (any, error) {
	ctx := r.Context()
	if actor, err := httpkit.User(r); err == nil {
		ctx = scope.With(ctx, map[string]string{"actor": actor})
	}
	return h.svc.Moderate(ctx, in)
}

// swagger:route POST /reviews/list Reviews reviewsList
// @Summary List reviews for one agent
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filter"
// @Success 200 {array} domain.Review "ok"
// @Router /reviews/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /reviews/trust Reviews reviewsTrust
// @Summary Blended trust summary for one agent
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.TrustInput true "Agent"
// @Success 200 {object} domain.TrustSummary "ok"
// @Router /reviews/trust [post]
func (h *handlers) trust(r *stdhttp.Request, in domain.TrustInput) (any, error) {
	return h.svc.Trust(r.Context(), in.AgentID)
}
