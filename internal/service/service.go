package service

import (
	"context"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, mobile, password, role string) (*domain.User, string, error) // user, token
	Login(ctx context.Context, mobile, password string) (*domain.User, string, error)
	AdminLogin(ctx context.Context, mobile, password string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	ListCollectors(ctx context.Context, actor *domain.User) ([]domain.User, error)
}

// CreateRequestParams carries the requester-supplied fields of a new pickup
// request. All fields are required.
type CreateRequestParams struct {
	Description   string
	Quantity      string
	PickupAddress string
	ContactInfo   string
}

// RequestService is the lifecycle engine for pickup requests. Every mutating
// call appends exactly one audit transaction in the same database transaction
// as the state change.
type RequestService interface {
	Create(ctx context.Context, actor *domain.User, params CreateRequestParams) (*domain.PickupRequest, error)
	AdminSetStatus(ctx context.Context, actor *domain.User, requestID, status, collectorID string) (*domain.PickupRequest, error)
	CollectorSetStatus(ctx context.Context, actor *domain.User, requestID, status string) (*domain.PickupRequest, error)
	List(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error)
	ListAll(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error)
	ListTransactions(ctx context.Context, requestID string) ([]domain.Transaction, error)
}

type AnalyticsService interface {
	Summarize(ctx context.Context, actor *domain.User) (*domain.AnalyticsSummary, error)
}

type BootstrapService interface {
	SeedDefaultAccounts(ctx context.Context) error
}
