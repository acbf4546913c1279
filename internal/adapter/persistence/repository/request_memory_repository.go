package repository

import (
	"context"
	"sync"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase/interfaces"
)

// RequestMemoryRepository keeps requests in process memory. Used for tests and
// for STORE_BACKEND=memory runs where nothing should outlive the process.

type RequestMemoryRepository struct {
	mu       sync.RWMutex
	requests []entities.ServiceRequest
}

var _ interfaces.IRequestStore = (*RequestMemoryRepository)(nil)

func NewRequestMemoryRepository(seed ...entities.ServiceRequest) *RequestMemoryRepository {
	return &RequestMemoryRepository{requests: append([]entities.ServiceRequest(nil), seed...)}
}

func (r *RequestMemoryRepository) Load(ctx context.Context) ([]entities.ServiceRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ServiceRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *RequestMemoryRepository) Append(ctx context.Context, req entities.ServiceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func (r *RequestMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requests)
}
