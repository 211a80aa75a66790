// Package http provides http transport for enquiries
package http

import (
	stdhttp "net/http"

	"buyside/internal/modkit/httpkit"
	"buyside/internal/services/api/enquiries/domain"
)

// Register mounts enquiry endpoints on the given router
func Register(r httpkit.Router, s domain.EnquiriesPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SubmitInput](r, "/submit", h.submit)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
}

type handlers struct{ svc domain.EnquiriesPort }

// swagger:route POST /enquiries/submit Enquiries enquiriesSubmit
// @Summary Submit a buyer enquiry
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Enquiry"
// @Success 200 {object} domain.Enquiry "ok"
// @Router /enquiries/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), in)
}

// swagger:route POST /enquiries/list Enquiries enquiriesList
// @Summary List enquiries for one agent
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filter"
// @Success 200 {array} domain.Enquiry "ok"
// @Router /enquiries/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}
