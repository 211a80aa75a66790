// Package http provides http transport for agent profiles
package http

import (
	stdhttp "net/http"

	"buyside/internal/modkit/httpkit"
	"buyside/internal/platform/net/middleware"
	"buyside/internal/services/api/agents/domain"
)

// Register mounts agent endpoints on the given router.
// Verification is operator-only and sits behind the auth port
func Register(r httpkit.Router, s domain.ProfilesPort, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.ClaimInput](r, "/claim", h.claim)
	httpkit.PostJSON[domain.DirectoryInput](r, "/directory", h.directory)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.VerifyInput](pr, "/verify", h.verify)
	})
}

type handlers struct{ svc domain.ProfilesPort }

// swagger:route POST /agents/create Agents agentsCreate
// @Summary Create an agent profile
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Profile"
// @Success 200 {object} domain.Agent "ok"
// @Router /agents/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /agents/get Agents agentsGet
// @Summary Fetch one agent profile
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Agent "ok"
// @Router /agents/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in.ID)
}

// swagger:route POST /agents/update Agents agentsUpdate
// @Summary Edit a profile; derived fields are recomputed atomically
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Changes"
// @Success 200 {object} domain.Agent "ok"
// @Router /agents/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /agents/claim Agents agentsClaim
// @Summary Claim ownership of a profile
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.ClaimInput true "ID"
// @Success 200 {object} domain.Agent "ok"
// @Router /agents/claim [post]
func (h *handlers) claim(r *stdhttp.Request, in domain.ClaimInput) (any, error) {
	return h.svc.Claim(r.Context(), in.ID)
}

// swagger:route POST /agents/verify Agents agentsVerify
// @Summary Toggle operator verification
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.VerifyInput true "Flag"
// @Success 200 {object} domain.Agent "ok"
// @Router /agents/verify [post]
func (h *handlers) verify(r *stdhttp.Request, in domain.VerifyInput) (any, error) {
	return h.svc.Verify(r.Context(), in.ID, in.Verified)
}

// swagger:route POST /agents/directory Agents agentsDirectory
// @Summary Public directory listing ordered by authority score
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body domain.DirectoryInput true "Filters"
// @Success 200 {array} domain.DirectoryRow "ok"
// @Router /agents/directory [post]
func (h *handlers) directory(r *stdhttp.Request, in domain.DirectoryInput) (any, error) {
	return h.svc.Directory(r.Context(), in)
}
