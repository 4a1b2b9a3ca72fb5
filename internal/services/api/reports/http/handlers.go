// Package http provides http transport for monthly reports
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/reports/domain"
	svc "fieldnotes/internal/services/api/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.MonthInput](r, "/month", h.month)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reports/list Reports reportsList
// @Summary Generated monthly reports for a centre, newest first
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Centre"
// @Success 200 {array} domain.Report "ok"
// @Router /reports/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /reports/month Reports reportsMonth
// @Summary Assembled month view with activity and alias mentions
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.MonthInput true "Centre and period"
// @Success 200 {object} domain.MonthView "ok"
// @Router /reports/month [post]
func (h *handlers) month(r *stdhttp.Request, in domain.MonthInput) (any, error) {
	return h.svc.Month(r.Context(), in)
}
