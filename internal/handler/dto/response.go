package dto

import (
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
)

// ReservationResponse never carries the PIN; it only reaches the user through notifications.
type ReservationResponse struct {
	ID        int64  `json:"id"`
	MachineID int    `json:"machine_id"`
	DateTime  string `json:"date_time"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error         string `json:"error"`
	ReservationID int64  `json:"reservation_id,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		MachineID: r.MachineID,
		DateTime:  r.DateTime.Format(time.RFC3339),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
