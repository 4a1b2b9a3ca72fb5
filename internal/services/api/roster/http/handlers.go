// Package http provides http transport for rosters
package http

import (
	stdhttp "net/http"

	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/services/api/roster/domain"
	svc "fieldnotes/internal/services/api/roster/service"
)

// Register mounts roster endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RosterInput](r, "/facilitators", h.facilitators)
	httpkit.PostJSON[domain.RosterInput](r, "/volunteers", h.volunteers)
	httpkit.PostJSON[domain.RosterInput](r, "/partners", h.partners)
	httpkit.PostJSON[domain.RosterInput](r, "/children", h.children)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /roster/facilitators Roster rosterFacilitators
// @Summary Facilitators for a centre
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body domain.RosterInput true "Selector"
// @Success 200 {array} domain.Facilitator "ok"
// @Router /roster/facilitators [post]
func (h *handlers) facilitators(r *stdhttp.Request, in domain.RosterInput) (any, error) {
	return h.svc.Facilitators(r.Context(), in)
}

// swagger:route POST /roster/volunteers Roster rosterVolunteers
// @Summary Volunteers for a centre
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body domain.RosterInput true "Selector"
// @Success 200 {array} domain.Volunteer "ok"
// @Router /roster/volunteers [post]
func (h *handlers) volunteers(r *stdhttp.Request, in domain.RosterInput) (any, error) {
	return h.svc.Volunteers(r.Context(), in)
}

// swagger:route POST /roster/partners Roster rosterPartners
// @Summary Partner organisations for a centre
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body domain.RosterInput true "Selector"
// @Success 200 {array} domain.Partner "ok"
// @Router /roster/partners [post]
func (h *handlers) partners(r *stdhttp.Request, in domain.RosterInput) (any, error) {
	return h.svc.Partners(r.Context(), in)
}

// swagger:route POST /roster/children Roster rosterChildren
// @Summary Enrolled children for a centre
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body domain.RosterInput true "Selector"
// @Success 200 {array} domain.Child "ok"
// @Router /roster/children [post]
func (h *handlers) children(r *stdhttp.Request, in domain.RosterInput) (any, error) {
	return h.svc.Children(r.Context(), in)
}
