package ports

import (
	"context"
	"time"
)

type MachineAllocator interface {
	FirstAvailableMachineID() int
	GeneratePIN() string
}

type MachineGateway interface {
	Lock(ctx context.Context, machineID int, reservationID int64, when time.Time, pin string) (bool, error)
	Unlock(ctx context.Context, machineID int, reservationID int64) error
}
