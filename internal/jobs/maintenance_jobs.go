package jobs

import (
	"context"
	"time"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

// RemindStaleRequests reports submitted requests that have sat unassigned
// beyond the configured age, so operators can chase them up.
func (jr *JobRunner) RemindStaleRequests() {
	jr.runWithRecovery("RemindStaleRequests", func() {
		ctx := context.Background()

		requests, err := jr.store.Requests().List(ctx, repository.RequestFilter{})
		if err != nil {
			logger.Error("Failed to list requests", "error", err)
			return
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Scheduler.StaleAfterDays)
		count := 0
		for _, req := range requests {
			if req.Status != domain.StatusSubmitted || req.CreatedAt.After(cutoff) {
				continue
			}
			logger.Warn("Pickup request awaiting assignment",
				"request_id", req.ID,
				"created_at", req.CreatedAt,
				"age_days", int(time.Since(req.CreatedAt).Hours()/24))
			count++
		}
		logger.Info("Stale request scan finished", "stale", count, "threshold_days", jr.config.Scheduler.StaleAfterDays)
	})
}

// ReportAnalytics logs the daily request count summary.
func (jr *JobRunner) ReportAnalytics() {
	jr.runWithRecovery("ReportAnalytics", func() {
		ctx := context.Background()

		counts, err := jr.store.Requests().CountByStatus(ctx)
		if err != nil {
			logger.Error("Failed to count requests", "error", err)
			return
		}

		var total int64
		for _, n := range counts {
			total += n
		}
		logger.Info("Daily request summary",
			"total", total,
			"pending", counts[domain.StatusSubmitted]+counts[domain.StatusAssigned],
			"in_progress", counts[domain.StatusAccepted]+counts[domain.StatusPickedUp],
			"completed", counts[domain.StatusCompleted])
	})
}
