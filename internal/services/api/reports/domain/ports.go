package domain

import "context"

// ServicePort defines the service contract for reports
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Report, error)
	Month(ctx context.Context, in MonthInput) (MonthView, error)
}
