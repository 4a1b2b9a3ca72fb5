package domain

import "context"

// ServicePort defines the service contract for districts
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]District, error)
	Get(ctx context.Context, in GetInput) (Detail, error)
}
