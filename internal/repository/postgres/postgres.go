package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same repository code
// serves plain calls and calls inside Store.ExecTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repos struct {
	users        repository.UserRepository
	requests     repository.RequestRepository
	transactions repository.TransactionRepository
}

func newRepos(db DBTX) repos {
	return repos{
		users:        NewUserRepository(db),
		requests:     NewRequestRepository(db),
		transactions: NewTransactionRepository(db),
	}
}

func (r repos) Users() repository.UserRepository               { return r.users }
func (r repos) Requests() repository.RequestRepository         { return r.requests }
func (r repos) Transactions() repository.TransactionRepository { return r.transactions }

type Store struct {
	db *sql.DB
	repos
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repos: newRepos(db)}
}

func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(txStore{repos: newRepos(tx)}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			logger.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txStore is the Store view handed to an ExecTx callback. A nested ExecTx
// joins the transaction already in progress.
type txStore struct {
	repos
}

func (s txStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
