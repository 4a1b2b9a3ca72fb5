package module

import (
	"context"

	rosterdom "fieldnotes/internal/services/api/roster/domain"
	rostersvc "fieldnotes/internal/services/api/roster/service"
)

// Ports bundles what the roster module exposes for cross-module wiring
type Ports struct {
	Aliases rosterdom.AliasesPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAliasesPort adapts the roster service to the AliasesPort interface
type adaptAliasesPort struct{ svc rostersvc.Service }

// ActiveAliases implements the domain AliasesPort interface
func (a adaptAliasesPort) ActiveAliases(ctx context.Context, centerID string) ([]string, error) {
	return a.svc.ActiveAliases(ctx, centerID)
}
