package domain

import "context"

// ServicePort defines the service contract for roster
type ServicePort interface {
	Facilitators(ctx context.Context, in RosterInput) ([]Facilitator, error)
	Volunteers(ctx context.Context, in RosterInput) ([]Volunteer, error)
	Partners(ctx context.Context, in RosterInput) ([]Partner, error)
	Children(ctx context.Context, in RosterInput) ([]Child, error)
}

// AliasesPort exposes the active children's note aliases for a centre
// consumed by the reports module for highlight spans
type AliasesPort interface {
	ActiveAliases(ctx context.Context, centerID string) ([]string, error)
}
