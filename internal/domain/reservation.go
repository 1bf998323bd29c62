package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending ReservationStatus = "pending"
	ReservationStatusUsed    ReservationStatus = "used"
)

// Reservation ID is zero until the store assigns it.
type Reservation struct {
	ID        int64             `json:"id"`
	DateTime  time.Time         `json:"date_time"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	MachineID int               `json:"machine_id"`
	PIN       string            `json:"pin"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewReservation(dateTime time.Time, phone, email string, machineID int, pin string) *Reservation {
	return &Reservation{
		DateTime:  dateTime,
		Phone:     phone,
		Email:     email,
		MachineID: machineID,
		PIN:       pin,
		Status:    ReservationStatusPending,
	}
}

func (r *Reservation) IsUsed() bool {
	return r.Status == ReservationStatusUsed
}
