package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservation(machineID int, at time.Time) *domain.Reservation {
	return domain.NewReservation(at, "+48564777597", "some_email@some_domain.com", machineID, "49971")
}

func TestMemoryRepository_InsertAndLastInsertedID(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := ports.WithStoreSession(context.Background())

	in := newReservation(1, time.Now())
	require.NoError(t, repo.Insert(ctx, in))

	id, err := repo.LastInsertedID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Zero(t, in.ID, "insert must not assign the id on the caller's value")

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, got.Status)
	assert.Equal(t, "49971", got.PIN)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemoryRepository_LastInsertedID_PerSession(t *testing.T) {
	repo := NewMemoryRepo()

	var wg sync.WaitGroup
	ids := make([]int64, 50)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := ports.WithStoreSession(context.Background())
			if !assert.NoError(t, repo.Insert(ctx, newReservation(i%25+1, time.Now()))) {
				return
			}
			id, err := repo.LastInsertedID(ctx)
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d returned twice", id)
		seen[id] = true
	}
}

func TestMemoryRepository_LastInsertedID_NoSession(t *testing.T) {
	repo := NewMemoryRepo()

	require.NoError(t, repo.Insert(context.Background(), newReservation(1, time.Now())))

	_, err := repo.LastInsertedID(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoInsertedID)

	_, err = repo.LastInsertedID(ports.WithStoreSession(context.Background()))
	assert.ErrorIs(t, err, domain.ErrNoInsertedID)
}

func TestMemoryRepository_InsertRejectsAssignedID(t *testing.T) {
	repo := NewMemoryRepo()

	r := newReservation(1, time.Now())
	r.ID = 5

	err := repo.Insert(context.Background(), r)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemoryRepository_GetByMachineID_EarliestPending(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := ports.WithStoreSession(context.Background())
	now := time.Now()

	require.NoError(t, repo.Insert(ctx, newReservation(3, now.Add(2*time.Hour))))
	later, _ := repo.LastInsertedID(ctx)
	require.NoError(t, repo.Insert(ctx, newReservation(3, now.Add(time.Hour))))
	earlier, _ := repo.LastInsertedID(ctx)
	require.NoError(t, repo.Insert(ctx, newReservation(4, now)))

	got, err := repo.GetByMachineID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, earlier, got.ID)

	require.NoError(t, repo.UpdateAsUsed(ctx, earlier))

	got, err = repo.GetByMachineID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, later, got.ID)

	_, err = repo.GetByMachineID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryRepository_UpdateAsUsed_Terminal(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := ports.WithStoreSession(context.Background())

	require.NoError(t, repo.Insert(ctx, newReservation(1, time.Now())))
	id, _ := repo.LastInsertedID(ctx)

	require.NoError(t, repo.UpdateAsUsed(ctx, id))
	assert.ErrorIs(t, repo.UpdateAsUsed(ctx, id), domain.ErrReservationNotFound)
	assert.ErrorIs(t, repo.UpdatePIN(ctx, id, "11111"), domain.ErrReservationNotFound)

	_, err := repo.GetByMachineID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsUsed())
}

func TestMemoryRepository_FailedAttemptsAndPIN(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := ports.WithStoreSession(context.Background())

	require.NoError(t, repo.Insert(ctx, newReservation(1, time.Now())))
	id, _ := repo.LastInsertedID(ctx)

	n, err := repo.GetFailedAttempts(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.UpdateFailedAttempts(ctx, id, 3))
	n, err = repo.GetFailedAttempts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.ErrorIs(t, repo.UpdateFailedAttempts(ctx, id, -1), domain.ErrValidation)

	require.NoError(t, repo.UpdatePIN(ctx, id, "07627"))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "07627", got.PIN)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	_, err = repo.GetFailedAttempts(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	assert.ErrorIs(t, repo.UpdateFailedAttempts(ctx, 42, 1), domain.ErrReservationNotFound)
	assert.ErrorIs(t, repo.UpdatePIN(ctx, 42, "12345"), domain.ErrReservationNotFound)
	assert.ErrorIs(t, repo.UpdateAsUsed(ctx, 42), domain.ErrReservationNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := ports.WithStoreSession(context.Background())

	require.NoError(t, repo.Insert(ctx, newReservation(1, time.Now())))
	id, _ := repo.LastInsertedID(ctx)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	got.PIN = "00000"

	again, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "49971", again.PIN)
}
