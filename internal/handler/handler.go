package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, dateTime time.Time, phone, email string) (*domain.Reservation, error)
	Claim(ctx context.Context, machineID int, pin string) error
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Handler struct {
	reservationService ReservationSvc
}

func NewHandler(reservationService ReservationSvc) *Handler {
	return &Handler{reservationService: reservationService}
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_time format, expected RFC3339",
		})
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), dateTime, req.Phone, req.Email)
	if err != nil {
		// the reservation is stored even when the machine refused to lock
		if reservation != nil && errors.Is(err, domain.ErrMachineLockFailed) {
			c.Set("error", err.Error())
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{
				Error:         err.Error(),
				ReservationID: reservation.ID,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ClaimMachine(c *ginext.Context) {
	machineID, err := strconv.Atoi(c.Param("id"))
	if err != nil || machineID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid machine id"})
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.Claim(c.Request.Context(), machineID, req.PIN); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.ReservationStatusUsed)})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidPIN):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMachineLockFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
