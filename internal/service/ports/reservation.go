package ports

import (
	"context"

	"github.com/stpnv0/LaundryLocker/internal/domain"
)

type ReservationRepo interface {
	Insert(ctx context.Context, r *domain.Reservation) error
	LastInsertedID(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByMachineID(ctx context.Context, machineID int) (*domain.Reservation, error)
	UpdateAsUsed(ctx context.Context, id int64) error
	UpdateFailedAttempts(ctx context.Context, id int64, n int) error
	GetFailedAttempts(ctx context.Context, id int64) (int, error)
	UpdatePIN(ctx context.Context, id int64, pin string) error
}
