package domain

type AnalyticsSummary struct {
	TotalRequests      int64 `json:"total_requests"`
	PendingRequests    int64 `json:"pending_requests"`
	CompletedRequests  int64 `json:"completed_requests"`
	InProgressRequests int64 `json:"in_progress_requests"`
}
