package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

type transactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now().UTC()
	}
	query := `INSERT INTO transactions (id, request_id, action, performed_by, timestamp)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, txn.ID, txn.RequestID, txn.Action, txn.PerformedBy, txn.Timestamp)
	return err
}

func (r *transactionRepository) ListByRequest(ctx context.Context, requestID string) ([]domain.Transaction, error) {
	query := `SELECT id, request_id, action, performed_by, timestamp
	          FROM transactions WHERE request_id = $1 ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.RequestID, &txn.Action, &txn.PerformedBy, &txn.Timestamp); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
