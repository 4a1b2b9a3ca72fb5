package domain

import "context"

// ServicePort defines the service contract for centers
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Center, error)
	Get(ctx context.Context, in GetInput) (Detail, error)
}
