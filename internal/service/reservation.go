package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/metrics"
	"github.com/stpnv0/LaundryLocker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultMaxFailedAttempts = 5

type ReservationConfig struct {
	MaxFailedAttempts int
}

type ReservationService struct {
	repo      ports.ReservationRepo
	allocator ports.MachineAllocator
	gateway   ports.MachineGateway
	email     ports.Notifier
	sms       ports.Notifier
	locker    ports.ClaimLocker
	cfg       ReservationConfig
	metrics   *metrics.Metrics
	logger    logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	allocator ports.MachineAllocator,
	gateway ports.MachineGateway,
	email ports.Notifier,
	sms ports.Notifier,
	locker ports.ClaimLocker,
	cfg ReservationConfig,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ReservationService {
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = DefaultMaxFailedAttempts
	}

	return &ReservationService{
		repo:      repo,
		allocator: allocator,
		gateway:   gateway,
		email:     email,
		sms:       sms,
		locker:    locker,
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger,
	}
}

// Create assigns a machine and PIN, stores the reservation, mails the confirmation
// and locks the machine. A refused lock is reported after the reservation has been
// stored and confirmed; nothing is rolled back.
func (s *ReservationService) Create(ctx context.Context, dateTime time.Time, phone, email string) (*domain.Reservation, error) {
	if err := validateCreate(dateTime, phone, email); err != nil {
		s.metrics.IncCreated(metrics.ResultError)
		return nil, err
	}

	reservation, err := s.create(ctx, dateTime, phone, email)
	if err != nil {
		s.metrics.IncCreated(metrics.ResultError)
		return reservation, err
	}

	s.metrics.IncCreated(metrics.ResultOK)
	return reservation, nil
}

func (s *ReservationService) create(ctx context.Context, dateTime time.Time, phone, email string) (*domain.Reservation, error) {
	ctx = ports.WithStoreSession(ctx)

	machineID := s.allocator.FirstAvailableMachineID()
	pin := s.allocator.GeneratePIN()

	reservation := domain.NewReservation(dateTime, phone, email, machineID, pin)
	if err := s.repo.Insert(ctx, reservation); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	id, err := s.repo.LastInsertedID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservation id: %w", err)
	}
	reservation.ID = id

	s.logger.Info("reservation created",
		logger.Int64("reservation_id", id),
		logger.Int("machine_id", machineID),
		logger.String("date_time", dateTime.Format(time.RFC3339)),
	)

	err = s.email.Send(ctx, domain.EventConfirm, email, domain.NotificationArgs{
		domain.ArgReservationID: id,
		domain.ArgMachineID:     machineID,
		domain.ArgPIN:           pin,
	})
	if err != nil {
		return reservation, fmt.Errorf("send confirmation: %w", err)
	}

	if err = s.lock(ctx, reservation, pin); err != nil {
		return reservation, err
	}

	return reservation, nil
}

// Claim opens the machine when pin matches its active reservation.
// A wrong pin counts as a failed attempt and is reported as domain.ErrInvalidPIN.
func (s *ReservationService) Claim(ctx context.Context, machineID int, pin string) error {
	unlock, err := s.locker.Lock(ctx, claimKey(machineID))
	if err != nil {
		s.metrics.IncClaim(metrics.ResultError)
		return fmt.Errorf("acquire claim lock: %w", err)
	}
	defer unlock()

	reservation, err := s.repo.GetByMachineID(ctx, machineID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.metrics.IncClaim(metrics.ResultNotFound)
		} else {
			s.metrics.IncClaim(metrics.ResultError)
		}
		return fmt.Errorf("get reservation: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(reservation.PIN), []byte(pin)) != 1 {
		if err = s.failedAttempt(ctx, machineID, reservation); err != nil {
			s.metrics.IncClaim(metrics.ResultError)
			return err
		}
		s.metrics.IncClaim(metrics.ResultWrongPIN)
		return domain.ErrInvalidPIN
	}

	if err = s.repo.UpdateAsUsed(ctx, reservation.ID); err != nil {
		s.metrics.IncClaim(metrics.ResultError)
		return fmt.Errorf("mark reservation used: %w", err)
	}

	if err = s.gateway.Unlock(ctx, machineID, reservation.ID); err != nil {
		s.metrics.IncClaim(metrics.ResultError)
		return fmt.Errorf("unlock machine: %w", err)
	}

	s.logger.Info("reservation claimed",
		logger.Int64("reservation_id", reservation.ID),
		logger.Int("machine_id", machineID),
	)
	s.metrics.IncClaim(metrics.ResultUsed)

	return nil
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) failedAttempt(ctx context.Context, machineID int, reservation *domain.Reservation) error {
	attempts, err := s.repo.GetFailedAttempts(ctx, reservation.ID)
	if err != nil {
		return fmt.Errorf("get failed attempts: %w", err)
	}

	// last tolerated wrong attempt
	if attempts >= s.cfg.MaxFailedAttempts-1 {
		return s.resetPIN(ctx, machineID, reservation)
	}

	if err = s.repo.UpdateFailedAttempts(ctx, reservation.ID, attempts+1); err != nil {
		return fmt.Errorf("update failed attempts: %w", err)
	}

	s.logger.Warn("wrong pin",
		logger.Int64("reservation_id", reservation.ID),
		logger.Int("machine_id", machineID),
		logger.Int("failed_attempts", attempts+1),
	)

	return nil
}

func (s *ReservationService) resetPIN(ctx context.Context, machineID int, reservation *domain.Reservation) error {
	newPIN := s.allocator.GeneratePIN()

	if err := s.repo.UpdatePIN(ctx, reservation.ID, newPIN); err != nil {
		return fmt.Errorf("update pin: %w", err)
	}
	reservation.PIN = newPIN

	locked, err := s.gateway.Lock(ctx, machineID, reservation.ID, reservation.DateTime, newPIN)
	if err != nil {
		return fmt.Errorf("relock machine: %w", err)
	}
	if !locked {
		return fmt.Errorf("relock machine %d: %w", machineID, domain.ErrMachineLockFailed)
	}

	err = s.sms.Send(ctx, domain.EventResetPIN, reservation.Phone, domain.NotificationArgs{
		domain.ArgPIN: newPIN,
	})
	if err != nil {
		return fmt.Errorf("send pin reset: %w", err)
	}

	if err = s.repo.UpdateFailedAttempts(ctx, reservation.ID, 0); err != nil {
		return fmt.Errorf("reset failed attempts: %w", err)
	}

	s.logger.Info("pin reset",
		logger.Int64("reservation_id", reservation.ID),
		logger.Int("machine_id", machineID),
	)
	s.metrics.IncPINReset()

	return nil
}

func (s *ReservationService) lock(ctx context.Context, reservation *domain.Reservation, pin string) error {
	locked, err := s.gateway.Lock(ctx, reservation.MachineID, reservation.ID, reservation.DateTime, pin)
	if err != nil {
		return fmt.Errorf("lock machine: %w", err)
	}
	if !locked {
		s.logger.Error("machine refused to lock",
			logger.Int64("reservation_id", reservation.ID),
			logger.Int("machine_id", reservation.MachineID),
		)
		return fmt.Errorf("lock machine %d: %w", reservation.MachineID, domain.ErrMachineLockFailed)
	}

	return nil
}

func validateCreate(dateTime time.Time, phone, email string) error {
	switch {
	case dateTime.IsZero():
		return fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	case strings.TrimSpace(phone) == "":
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	case strings.TrimSpace(email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	return nil
}

func claimKey(machineID int) string {
	return "machine:" + strconv.Itoa(machineID)
}
