package queries

import (
	"context"

	"github.com/google/uuid"
)

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type ServiceQueries struct {
	services ServiceReader
}

func NewServiceQueries(services ServiceReader) *ServiceQueries {
	return &ServiceQueries{services: services}
}

func (q *ServiceQueries) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	return q.services.FindByID(ctx, id)
}

func (q *ServiceQueries) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.services.List(ctx)
}
