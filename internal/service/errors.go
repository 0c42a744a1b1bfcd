package service

import (
	"fmt"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
)

// persistenceError tags a store or audit-log failure so the transport layer
// maps it to a server-side error rather than a client fault.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrPersistence, op, err)
}
