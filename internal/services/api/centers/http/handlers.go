// Package http provides http transport for centers
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/centers/domain"
	svc "fieldnotes/internal/services/api/centers/service"
)

// Register mounts centre endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /centers/list Centers centersList
// @Summary List centres filtered by district and status
// @Tags Centers
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Center "ok"
// @Router /centers/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /centers/get Centers centersGet
// @Summary One centre with district name and roster counts
// @Tags Centers
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Selector"
// @Success 200 {object} domain.Detail "ok"
// @Router /centers/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}
