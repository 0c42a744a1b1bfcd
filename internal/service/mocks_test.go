package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.PickupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.PickupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupRequest), args.Error(1)
}
func (m *MockRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.PickupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupRequest), args.Error(1)
}
func (m *MockRequestRepo) List(ctx context.Context, filter repository.RequestFilter) ([]domain.PickupRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupRequest), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, collectorID *string, updatedAt time.Time) error {
	args := m.Called(ctx, id, status, collectorID, updatedAt)
	return args.Error(0)
}
func (m *MockRequestRepo) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.RequestStatus]int64), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByRequest(ctx context.Context, requestID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// fakeStore wires the repo mocks into a repository.Store. ExecTx runs the
// callback directly against the same repos, mirroring the real store's
// transaction-bound view.
type fakeStore struct {
	users        *MockUserRepo
	requests     *MockRequestRepo
	transactions *MockTransactionRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        new(MockUserRepo),
		requests:     new(MockRequestRepo),
		transactions: new(MockTransactionRepo),
	}
}

func (s *fakeStore) Users() repository.UserRepository               { return s.users }
func (s *fakeStore) Requests() repository.RequestRepository         { return s.requests }
func (s *fakeStore) Transactions() repository.TransactionRepository { return s.transactions }
func (s *fakeStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
