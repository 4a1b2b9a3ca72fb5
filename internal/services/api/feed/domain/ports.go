package domain

import "context"

// ServicePort defines the service contract for the feed
type ServicePort interface {
	Activity(ctx context.Context, in ActivityInput) (Activity, error)
}

// AssemblerPort exposes the reconciled feed to other modules
// consumed by reports for the month view and by playground for summarization
type AssemblerPort interface {
	Assemble(ctx context.Context, centerID, period string) (Activity, error)
}
