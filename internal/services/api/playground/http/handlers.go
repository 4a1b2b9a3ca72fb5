// Package http provides http transport for the LLM playground
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/playground/domain"
	svc "fieldnotes/internal/services/api/playground/service"
)

// Register mounts playground endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SummarizeInput](r, "/summarize", h.summarize)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /playground/summarize Playground playgroundSummarize
// @Summary Summarize one centre-month of field notes with the configured model
// @Tags Playground
// @Accept json
// @Produce json
// @Param payload body domain.SummarizeInput true "Centre, period and prompt"
// @Success 200 {object} domain.SummarizeOutput "ok"
// @Router /playground/summarize [post]
func (h *handlers) summarize(r *stdhttp.Request, in domain.SummarizeInput) (any, error) {
	return h.svc.Summarize(r.Context(), in)
}
