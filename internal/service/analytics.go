package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

type analyticsService struct {
	requestRepo repository.RequestRepository
	timeout     time.Duration
}

func NewAnalyticsService(requestRepo repository.RequestRepository, queryTimeout time.Duration) AnalyticsService {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &analyticsService{requestRepo: requestRepo, timeout: queryTimeout}
}

// Summarize buckets the current request counts: pending covers submitted and
// assigned, in-progress covers accepted and picked up. Computed fresh on
// every call.
func (s *analyticsService) Summarize(ctx context.Context, actor *domain.User) (*domain.AnalyticsSummary, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	counts, err := s.requestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, persistenceError("count requests", err)
	}

	summary := &domain.AnalyticsSummary{
		PendingRequests:    counts[domain.StatusSubmitted] + counts[domain.StatusAssigned],
		InProgressRequests: counts[domain.StatusAccepted] + counts[domain.StatusPickedUp],
		CompletedRequests:  counts[domain.StatusCompleted],
	}
	for _, n := range counts {
		summary.TotalRequests += n
	}
	return summary, nil
}
