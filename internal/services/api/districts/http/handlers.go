// Package http provides http transport for districts
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/districts/domain"
	svc "fieldnotes/internal/services/api/districts/service"
)

// Register mounts district endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /districts/list Districts districtsList
// @Summary List districts with centre counts
// @Tags Districts
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.District "ok"
// @Router /districts/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /districts/get Districts districtsGet
// @Summary One district with roll-up counts
// @Tags Districts
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Selector"
// @Success 200 {object} domain.Detail "ok"
// @Router /districts/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}
