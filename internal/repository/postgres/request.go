package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

const requestColumns = `id, user_id, description, quantity, pickup_address, contact_info, status, assigned_collector_id, created_at, updated_at`

type requestRepository struct {
	db DBTX
}

func NewRequestRepository(db DBTX) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.PickupRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	query := `INSERT INTO ewaste_requests (` + requestColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	logger.DatabaseCall("create_request", query, "request_id", req.ID)
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.UserID, req.Description, req.Quantity, req.PickupAddress,
		req.ContactInfo, req.Status, req.AssignedCollectorID, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.PickupRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ewaste_requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *requestRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.PickupRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ewaste_requests WHERE id = $1 FOR UPDATE`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *requestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]domain.PickupRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ewaste_requests`
	var args []any
	switch {
	case filter.RequesterID != nil:
		query += ` WHERE user_id = $1`
		args = append(args, *filter.RequesterID)
	case filter.CollectorID != nil:
		query += ` WHERE assigned_collector_id = $1`
		args = append(args, *filter.CollectorID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PickupRequest
	for rows.Next() {
		req, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, collectorID *string, updatedAt time.Time) error {
	query := `UPDATE ewaste_requests
	          SET status = $2, assigned_collector_id = COALESCE($3, assigned_collector_id), updated_at = $4
	          WHERE id = $1`
	logger.DatabaseCall("update_request_status", query, "request_id", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, id, status, collectorID, updatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("update_request_status", affected, err)
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("update of request %s affected %d rows", id, affected)
	}
	return nil
}

func (r *requestRepository) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM ewaste_requests GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.RequestStatus]int64)
	for rows.Next() {
		var status domain.RequestStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row *sql.Row) (*domain.PickupRequest, error) {
	req, err := scanRequestRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return req, err
}

func scanRequestRow(row rowScanner) (*domain.PickupRequest, error) {
	req := &domain.PickupRequest{}
	var collectorID sql.NullString
	err := row.Scan(&req.ID, &req.UserID, &req.Description, &req.Quantity,
		&req.PickupAddress, &req.ContactInfo, &req.Status, &collectorID,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if collectorID.Valid {
		req.AssignedCollectorID = &collectorID.String
	}
	return req, nil
}
