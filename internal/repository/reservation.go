package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, date_time, phone, email, machine_id, pin, status, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert is not retried: a repeated INSERT would create a second reservation.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	if err := validateInsert(res); err != nil {
		return err
	}

	status := res.Status
	if status == "" {
		status = domain.ReservationStatusPending
	}

	query := `INSERT INTO reservations (date_time, phone, email, machine_id, pin, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	var id int64
	err := r.db.Master.QueryRowContext(
		ctx, query,
		res.DateTime.UTC(), res.Phone, res.Email,
		res.MachineID, res.PIN, status,
	).Scan(&id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Constraint)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	recordInsert(ctx, id)
	return nil
}

func (r *ReservationRepository) LastInsertedID(ctx context.Context) (int64, error) {
	return lastInsertedID(ctx)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return scanReservation(row)
}

// GetByMachineID returns the earliest pending reservation of the machine.
func (r *ReservationRepository) GetByMachineID(ctx context.Context, machineID int) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE machine_id = $1 AND status = $2
			  ORDER BY date_time ASC, id ASC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, machineID, domain.ReservationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("get reservation by machine: %w", err)
	}

	return scanReservation(row)
}

func (r *ReservationRepository) UpdateAsUsed(ctx context.Context, id int64) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	return r.execOne(ctx, "mark reservation used", query, id, domain.ReservationStatusUsed, domain.ReservationStatusPending)
}

func (r *ReservationRepository) UpdateFailedAttempts(ctx context.Context, id int64, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: failed attempts must be >= 0", domain.ErrValidation)
	}

	query := `UPDATE reservations
			  SET failed_attempts = $2, updated_at = now()
			  WHERE id = $1`

	return r.execOne(ctx, "update failed attempts", query, id, n)
}

func (r *ReservationRepository) GetFailedAttempts(ctx context.Context, id int64) (int, error) {
	query := `SELECT failed_attempts FROM reservations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, fmt.Errorf("get failed attempts: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrReservationNotFound
		}
		return 0, fmt.Errorf("scan failed attempts: %w", err)
	}

	return n, nil
}

func (r *ReservationRepository) UpdatePIN(ctx context.Context, id int64, pin string) error {
	query := `UPDATE reservations
			  SET pin = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	return r.execOne(ctx, "update pin", query, id, pin, domain.ReservationStatusPending)
}

func (r *ReservationRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.DateTime, &res.Phone, &res.Email,
		&res.MachineID, &res.PIN, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}
