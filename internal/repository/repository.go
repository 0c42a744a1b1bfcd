package repository

import (
	"context"
	"time"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID returns (nil, nil) when no user with the id exists.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByMobile returns (nil, nil) when no user with the mobile exists.
	GetByMobile(ctx context.Context, mobile string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// RequestFilter selects the pickup requests an actor may see. A nil field
// places no constraint; the zero value matches every request.
type RequestFilter struct {
	RequesterID *string
	CollectorID *string
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.PickupRequest) error
	// GetByID returns (nil, nil) when no request with the id exists.
	GetByID(ctx context.Context, id string) (*domain.PickupRequest, error)
	// GetByIDForUpdate is GetByID with a row lock held until the enclosing
	// transaction ends. Only meaningful inside Store.ExecTx.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.PickupRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]domain.PickupRequest, error)
	// UpdateStatus sets the status and updated_at of one request. A non-nil
	// collectorID overwrites the assignment; nil leaves it untouched. The
	// assignment is never cleared.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, collectorID *string, updatedAt time.Time) error
	CountByStatus(ctx context.Context) (map[domain.RequestStatus]int64, error)
}

type TransactionRepository interface {
	// Create assigns a fresh id and timestamp when unset, then persists.
	Create(ctx context.Context, txn *domain.Transaction) error
	// ListByRequest returns the audit entries for a request, newest first.
	ListByRequest(ctx context.Context, requestID string) ([]domain.Transaction, error)
}

// Store bundles the repositories over one database handle. ExecTx runs fn
// against repositories bound to a single SQL transaction; the callback's
// writes commit together or not at all.
type Store interface {
	Users() UserRepository
	Requests() RequestRepository
	Transactions() TransactionRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
