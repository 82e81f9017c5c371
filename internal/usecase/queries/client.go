package queries

import "context"

type ClientReader interface {
	FindByPhone(ctx context.Context, rawPhone string) (*ClientView, error)
	List(ctx context.Context) ([]*ClientView, error)
}

type ClientQueries struct {
	clients ClientReader
}

func NewClientQueries(clients ClientReader) *ClientQueries {
	return &ClientQueries{clients: clients}
}

func (q *ClientQueries) GetClient(ctx context.Context, rawPhone string) (*ClientView, error) {
	return q.clients.FindByPhone(ctx, rawPhone)
}

func (q *ClientQueries) ListClients(ctx context.Context) ([]*ClientView, error) {
	return q.clients.List(ctx)
}
