package machine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stpnv0/LaundryLocker/internal/metrics"
)

const defaultTimeout = 5 * time.Second

// HTTPGateway talks to the lock controller that physically locks and unlocks machines.
type HTTPGateway struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
}

func NewHTTPGateway(baseURL string, hc *http.Client, m *metrics.Metrics) *HTTPGateway {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		metrics: m,
	}
}

type lockReq struct {
	ReservationID int64  `json:"reservation_id"`
	DateTime      string `json:"date_time"`
	PIN           string `json:"pin"`
}

type lockResp struct {
	Locked bool `json:"locked"`
}

type unlockReq struct {
	ReservationID int64 `json:"reservation_id"`
}

// Lock asks the controller to hold machineID for the reservation until the PIN is entered.
func (g *HTTPGateway) Lock(ctx context.Context, machineID int, reservationID int64, when time.Time, pin string) (bool, error) {
	start := time.Now()
	defer func() { g.metrics.ObserveGateway("lock", float64(time.Since(start).Milliseconds())) }()

	path := fmt.Sprintf("%s/machines/%d/lock", g.baseURL, machineID)
	body := lockReq{
		ReservationID: reservationID,
		DateTime:      when.UTC().Format(time.RFC3339),
		PIN:           pin,
	}

	var out lockResp
	code, raw, err := g.doJSON(ctx, path, body, &out)
	if err != nil {
		return false, fmt.Errorf("lock machine %d: %w", machineID, err)
	}
	if code < 200 || code >= 300 {
		return false, &UnexpectedStatusError{Method: http.MethodPost, Path: path, Code: code, Body: raw}
	}

	return out.Locked, nil
}

func (g *HTTPGateway) Unlock(ctx context.Context, machineID int, reservationID int64) error {
	start := time.Now()
	defer func() { g.metrics.ObserveGateway("unlock", float64(time.Since(start).Milliseconds())) }()

	path := fmt.Sprintf("%s/machines/%d/unlock", g.baseURL, machineID)

	code, raw, err := g.doJSON(ctx, path, unlockReq{ReservationID: reservationID}, nil)
	if err != nil {
		return fmt.Errorf("unlock machine %d: %w", machineID, err)
	}
	if code < 200 || code >= 300 {
		return &UnexpectedStatusError{Method: http.MethodPost, Path: path, Code: code, Body: raw}
	}

	return nil
}

// doJSON posts req and decodes a JSON answer into resp when one is given.
func (g *HTTPGateway) doJSON(ctx context.Context, url string, req any, resp any) (int, string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return 0, "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	rsp, err := g.http.Do(httpReq)
	if err != nil {
		return 0, "", fmt.Errorf("send request: %w", err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(rsp.Body, 1<<20))
	if err != nil {
		return rsp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}
	raw := strings.TrimSpace(string(body))

	if resp != nil && rsp.StatusCode >= 200 && rsp.StatusCode < 300 {
		if err := json.Unmarshal(body, resp); err != nil {
			return rsp.StatusCode, raw, fmt.Errorf("decode response: %w", err)
		}
	}

	return rsp.StatusCode, raw, nil
}
