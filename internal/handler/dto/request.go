package dto

type CreateReservationRequest struct {
	DateTime string `json:"date_time" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ClaimRequest struct {
	PIN string `json:"pin" binding:"required,numeric"`
}
