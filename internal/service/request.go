package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

type requestService struct {
	store   repository.Store
	timeout time.Duration
}

func NewRequestService(store repository.Store, queryTimeout time.Duration) RequestService {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &requestService{store: store, timeout: queryTimeout}
}

func (s *requestService) Create(ctx context.Context, actor *domain.User, params CreateRequestParams) (*domain.PickupRequest, error) {
	if actor.Role != domain.RoleRequester {
		return nil, fmt.Errorf("%w: only users can create requests", domain.ErrForbidden)
	}
	if strings.TrimSpace(params.Description) == "" ||
		strings.TrimSpace(params.Quantity) == "" ||
		strings.TrimSpace(params.PickupAddress) == "" ||
		strings.TrimSpace(params.ContactInfo) == "" {
		return nil, fmt.Errorf("%w: description, quantity, pickup address and contact info are required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := &domain.PickupRequest{
		UserID:        actor.ID,
		Description:   params.Description,
		Quantity:      params.Quantity,
		PickupAddress: params.PickupAddress,
		ContactInfo:   params.ContactInfo,
		Status:        domain.StatusSubmitted,
	}
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Requests().Create(ctx, req); err != nil {
			return persistenceError("create request", err)
		}
		return appendAudit(ctx, tx, req.ID, "Request created", actor.ID)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) AdminSetStatus(ctx context.Context, actor *domain.User, requestID, status, collectorID string) (*domain.PickupRequest, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}
	newStatus, err := domain.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	// Absent and empty collector id both mean "no assignment".
	collectorID = strings.TrimSpace(collectorID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var req *domain.PickupRequest
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		req, err = lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		var assigned *string
		if collectorID != "" {
			collector, err := tx.Users().GetByID(ctx, collectorID)
			if err != nil {
				return persistenceError("look up collector", err)
			}
			if collector == nil || collector.Role != domain.RoleCollector {
				return fmt.Errorf("%w: %q does not reference a collector", domain.ErrInvalidInput, collectorID)
			}
			assigned = &collector.ID
		}

		now := time.Now().UTC()
		if err := tx.Requests().UpdateStatus(ctx, requestID, newStatus, assigned, now); err != nil {
			return persistenceError("update request", err)
		}
		req.Status = newStatus
		req.UpdatedAt = now
		if assigned != nil {
			req.AssignedCollectorID = assigned
		}

		action := fmt.Sprintf("Request %s", newStatus)
		if assigned != nil {
			action += fmt.Sprintf(" and assigned to collector %s", *assigned)
		}
		return appendAudit(ctx, tx, requestID, action, actor.ID)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) CollectorSetStatus(ctx context.Context, actor *domain.User, requestID, status string) (*domain.PickupRequest, error) {
	if actor.Role != domain.RoleCollector && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: collector or admin access required", domain.ErrForbidden)
	}
	newStatus, err := domain.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var req *domain.PickupRequest
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		req, err = lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if actor.Role == domain.RoleCollector {
			if req.AssignedCollectorID == nil || *req.AssignedCollectorID != actor.ID {
				return fmt.Errorf("%w: not authorized to update this request", domain.ErrForbidden)
			}
		}

		now := time.Now().UTC()
		if err := tx.Requests().UpdateStatus(ctx, requestID, newStatus, nil, now); err != nil {
			return persistenceError("update request", err)
		}
		req.Status = newStatus
		req.UpdatedAt = now

		return appendAudit(ctx, tx, requestID, fmt.Sprintf("Status updated to %s", newStatus), actor.ID)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) List(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error) {
	filter, err := visibilityFor(actor)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	requests, err := s.store.Requests().List(ctx, filter)
	if err != nil {
		return nil, persistenceError("list requests", err)
	}
	return requests, nil
}

func (s *requestService) ListAll(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	requests, err := s.store.Requests().List(ctx, repository.RequestFilter{})
	if err != nil {
		return nil, persistenceError("list requests", err)
	}
	return requests, nil
}

func (s *requestService) ListTransactions(ctx context.Context, requestID string) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	transactions, err := s.store.Transactions().ListByRequest(ctx, requestID)
	if err != nil {
		return nil, persistenceError("list transactions", err)
	}
	return transactions, nil
}

// visibilityFor derives the listing predicate from the actor's role:
// requesters see their own requests, collectors their assignments, admins
// everything.
func visibilityFor(actor *domain.User) (repository.RequestFilter, error) {
	switch actor.Role {
	case domain.RoleRequester:
		return repository.RequestFilter{RequesterID: &actor.ID}, nil
	case domain.RoleCollector:
		return repository.RequestFilter{CollectorID: &actor.ID}, nil
	case domain.RoleAdmin:
		return repository.RequestFilter{}, nil
	}
	return repository.RequestFilter{}, fmt.Errorf("%w: unknown role %q", domain.ErrForbidden, actor.Role)
}

// lockRequest loads a request under a row lock so concurrent transitions on
// the same id serialize. A missing request surfaces as NotFound.
func lockRequest(ctx context.Context, tx repository.Store, requestID string) (*domain.PickupRequest, error) {
	req, err := tx.Requests().GetByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, persistenceError("load request", err)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: request %s", domain.ErrNotFound, requestID)
	}
	return req, nil
}

// appendAudit writes the single audit transaction for a state change. It runs
// inside the same SQL transaction as the change, so a failed append rolls the
// change back.
func appendAudit(ctx context.Context, tx repository.Store, requestID, action, performedBy string) error {
	txn := &domain.Transaction{
		RequestID:   requestID,
		Action:      action,
		PerformedBy: performedBy,
	}
	if err := tx.Transactions().Create(ctx, txn); err != nil {
		return persistenceError("append audit transaction", err)
	}
	return nil
}
