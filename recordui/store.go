package recordui

import "context"

// Store is the persistence collaborator. Only the root node talks to it,
// always from inside one of its own inbound operations or event handlers;
// children never see it.
type Store interface {
	List(ctx context.Context) (Records, error)
	Upsert(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
