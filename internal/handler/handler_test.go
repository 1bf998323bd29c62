package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stpnv0/LaundryLocker/internal/handler/dto"
	hmocks "github.com/stpnv0/LaundryLocker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	svc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(svc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/machines/:id/claim", h.ClaimMachine)
	}

	return svc, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleReservation() *domain.Reservation {
	r := domain.NewReservation(
		time.Date(2020, 1, 19, 23, 59, 0, 0, time.UTC),
		"+48564777597",
		"some_email@some_domain.com",
		1,
		"49971",
	)
	r.ID = 69
	r.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return r
}

// --- Create ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)
	res := sampleReservation()

	svc.EXPECT().
		Create(mock.Anything, res.DateTime, "+48564777597", "some_email@some_domain.com").
		Return(res, nil)

	w := doJSON(r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		DateTime: "2020-01-19T23:59:00Z",
		Phone:    "+48564777597",
		Email:    "some_email@some_domain.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(69), resp.ID)
	assert.Equal(t, 1, resp.MachineID)
	assert.Equal(t, "pending", resp.Status)
	assert.NotContains(t, w.Body.String(), "49971")
}

func TestHandler_CreateReservation_InvalidBody(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/reservations", map[string]string{"phone": "+1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		DateTime: "19.01.2020 23:59",
		Phone:    "+48564777597",
		Email:    "some_email@some_domain.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC3339")
}

func TestHandler_CreateReservation_LockFailed(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(sampleReservation(), fmt.Errorf("lock machine 1: %w", domain.ErrMachineLockFailed))

	w := doJSON(r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		DateTime: "2020-01-19T23:59:00Z",
		Phone:    "+48564777597",
		Email:    "some_email@some_domain.com",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(69), resp.ReservationID)
}

func TestHandler_CreateReservation_InternalError(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	w := doJSON(r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		DateTime: "2020-01-19T23:59:00Z",
		Phone:    "+48564777597",
		Email:    "some_email@some_domain.com",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

// --- Get ---

func TestHandler_GetReservation(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().Get(mock.Anything, int64(69)).Return(sampleReservation(), nil)

	w := doJSON(r, http.MethodGet, "/api/reservations/69", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2020-01-19T23:59:00Z", resp.DateTime)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().Get(mock.Anything, int64(7)).Return(nil, domain.ErrReservationNotFound)

	w := doJSON(r, http.MethodGet, "/api/reservations/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/reservations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Claim ---

func TestHandler_ClaimMachine(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "used", svcErr: nil, wantCode: http.StatusOK},
		{name: "wrong pin", svcErr: domain.ErrInvalidPIN, wantCode: http.StatusForbidden},
		{name: "no reservation", svcErr: domain.ErrReservationNotFound, wantCode: http.StatusNotFound},
		{name: "relock failed", svcErr: fmt.Errorf("reset pin: %w", domain.ErrMachineLockFailed), wantCode: http.StatusBadGateway},
		{name: "store error", svcErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := setupRouter(t)
			svc.EXPECT().Claim(mock.Anything, 1, "49971").Return(tt.svcErr)

			w := doJSON(r, http.MethodPost, "/api/machines/1/claim", dto.ClaimRequest{PIN: "49971"})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_ClaimMachine_BadInput(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/machines/zero/claim", dto.ClaimRequest{PIN: "49971"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/machines/1/claim", dto.ClaimRequest{PIN: "49a71"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/machines/1/claim", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
