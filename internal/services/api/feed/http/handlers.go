// Package http provides http transport for the activity feed
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/feed/domain"
	svc "fieldnotes/internal/services/api/feed/service"
)

// Register mounts feed endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ActivityInput](r, "/activity", h.activity)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /feed/activity Feed feedActivity
// @Summary Reconciled image and note feed for one centre and month
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body domain.ActivityInput true "Centre and period"
// @Success 200 {object} domain.Activity "ok"
// @Router /feed/activity [post]
func (h *handlers) activity(r *stdhttp.Request, in domain.ActivityInput) (any, error) {
	return h.svc.Activity(r.Context(), in)
}
