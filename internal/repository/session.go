package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/service/ports"
)

func recordInsert(ctx context.Context, id int64) {
	if s, ok := ports.StoreSessionFrom(ctx); ok {
		s.SetLastID(id)
	}
}

// lastInsertedID reads the id recorded by the latest Insert of the caller's session.
// Without a session there is no caller identity to scope the answer to.
func lastInsertedID(ctx context.Context) (int64, error) {
	s, ok := ports.StoreSessionFrom(ctx)
	if !ok {
		return 0, domain.ErrNoInsertedID
	}

	id, ok := s.LastID()
	if !ok {
		return 0, domain.ErrNoInsertedID
	}

	return id, nil
}

func validateInsert(r *domain.Reservation) error {
	if r.ID != 0 {
		return fmt.Errorf("%w: reservation already has id %d", domain.ErrValidation, r.ID)
	}
	return nil
}
