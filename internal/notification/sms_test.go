package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSGateway_Send(t *testing.T) {
	var (
		got  smsMessage
		auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSMSGateway(srv.URL, "secret", time.Second, newTestTemplates(t))

	err := s.Send(context.Background(), domain.EventResetPIN, "+48564777597", domain.NotificationArgs{domain.ArgPIN: "77627"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, smsMessage{To: "+48564777597", Body: "Too many wrong PIN attempts. Your new PIN is 77627."}, got)
}

func TestSMSGateway_NoToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	s := NewSMSGateway(srv.URL, "", 0, newTestTemplates(t))

	require.NoError(t, s.Send(context.Background(), domain.EventResetPIN, "+1", domain.NotificationArgs{domain.ArgPIN: "1"}))
	assert.Empty(t, auth)
}

func TestSMSGateway_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewSMSGateway(srv.URL, "secret", time.Second, newTestTemplates(t))

	err := s.Send(context.Background(), domain.EventResetPIN, "+1", domain.NotificationArgs{domain.ArgPIN: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}
