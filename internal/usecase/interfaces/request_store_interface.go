package interfaces

import (
	"context"
	"plumbing_portal/internal/domain/entities"
)

// IRequestStore abstracts the append-only service request store.
//
// Implementations must never mutate or remove records that were already appended.
// Load returns records in append order.

type IRequestStore interface {
	Load(ctx context.Context) ([]entities.ServiceRequest, error)
	Append(ctx context.Context, r entities.ServiceRequest) error
}
