package module

import (
	"context"

	feeddom "fieldnotes/internal/services/api/feed/domain"
	feedsvc "fieldnotes/internal/services/api/feed/service"
)

// Ports bundles what the feed module exposes for cross-module wiring
type Ports struct {
	Assembler feeddom.AssemblerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAssemblerPort adapts the feed service to the AssemblerPort interface
type adaptAssemblerPort struct{ svc feedsvc.Service }

// Assemble implements the domain AssemblerPort interface
func (a adaptAssemblerPort) Assemble(ctx context.Context, centerID, period string) (feeddom.Activity, error) {
	return a.svc.Activity(ctx, feeddom.ActivityInput{CenterID: centerID, Period: period})
}
