package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
)

type memoryRecord struct {
	reservation    domain.Reservation
	failedAttempts int
}

// MemoryRepository keeps reservations in process memory. Used for local runs and tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*memoryRecord
	now    func() time.Time
}

func NewMemoryRepo() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[int64]*memoryRecord),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	if err := validateInsert(res); err != nil {
		return err
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	now := r.now()

	rec := &memoryRecord{reservation: *res}
	rec.reservation.ID = id
	rec.reservation.CreatedAt = now
	rec.reservation.UpdatedAt = now
	if rec.reservation.Status == "" {
		rec.reservation.Status = domain.ReservationStatusPending
	}
	r.byID[id] = rec
	r.mu.Unlock()

	recordInsert(ctx, id)
	return nil
}

func (r *MemoryRepository) LastInsertedID(ctx context.Context) (int64, error) {
	return lastInsertedID(ctx)
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	res := rec.reservation
	return &res, nil
}

// GetByMachineID returns the earliest pending reservation of the machine.
func (r *MemoryRepository) GetByMachineID(_ context.Context, machineID int) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []domain.Reservation
	for _, rec := range r.byID {
		if rec.reservation.MachineID == machineID && rec.reservation.Status == domain.ReservationStatusPending {
			active = append(active, rec.reservation)
		}
	}
	if len(active) == 0 {
		return nil, domain.ErrReservationNotFound
	}

	sort.Slice(active, func(i, j int) bool {
		if !active[i].DateTime.Equal(active[j].DateTime) {
			return active[i].DateTime.Before(active[j].DateTime)
		}
		return active[i].ID < active[j].ID
	})

	res := active[0]
	return &res, nil
}

func (r *MemoryRepository) UpdateAsUsed(_ context.Context, id int64) error {
	return r.update(id, true, func(rec *memoryRecord) {
		rec.reservation.Status = domain.ReservationStatusUsed
	})
}

func (r *MemoryRepository) UpdateFailedAttempts(_ context.Context, id int64, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: failed attempts must be >= 0", domain.ErrValidation)
	}
	return r.update(id, false, func(rec *memoryRecord) {
		rec.failedAttempts = n
	})
}

func (r *MemoryRepository) GetFailedAttempts(_ context.Context, id int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrReservationNotFound
	}

	return rec.failedAttempts, nil
}

func (r *MemoryRepository) UpdatePIN(_ context.Context, id int64, pin string) error {
	return r.update(id, true, func(rec *memoryRecord) {
		rec.reservation.PIN = pin
	})
}

func (r *MemoryRepository) update(id int64, pendingOnly bool, fn func(rec *memoryRecord)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || (pendingOnly && rec.reservation.Status != domain.ReservationStatusPending) {
		return domain.ErrReservationNotFound
	}

	fn(rec)
	rec.reservation.UpdatedAt = r.now()

	return nil
}
