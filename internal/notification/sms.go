package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/domain"
)

// SMSGateway sends notifications as text messages through an HTTP SMS API.
type SMSGateway struct {
	url        string
	token      string
	httpClient *http.Client
	templates  *Templates
}

func NewSMSGateway(url, token string, timeout time.Duration, templates *Templates) *SMSGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMSGateway{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		templates:  templates,
	}
}

type smsMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (s *SMSGateway) Send(ctx context.Context, event domain.NotificationEvent, destination string, args domain.NotificationArgs) error {
	text, err := s.templates.Render(event, args)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	jsonData, err := json.Marshal(smsMessage{To: destination, Body: text})
	if err != nil {
		return fmt.Errorf("marshal sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sms api error (status %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	return nil
}
