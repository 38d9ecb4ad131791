package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
)

// Submitter hands a finished booking request to the external
// booking-creation endpoint. No automatic retries: retry is a user-initiated
// re-submission.
type Submitter interface {
	Submit(ctx context.Context, req domain.BookingRequest) (*SubmitResult, error)
}

type SubmitResult struct {
	BookingID int64
	Status    string
	Total     int64
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type submitResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Submit(ctx context.Context, req domain.BookingRequest) (*SubmitResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("submit booking: %s", bestErrorMessage(body, resp.StatusCode))
	}

	var created submitResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}
	return &SubmitResult{BookingID: created.ID, Status: created.Status, Total: created.Total}, nil
}

// bestErrorMessage extracts a human-readable message from an error payload.
// The convention is an "error" field, sometimes "message"; "error" wins when
// both are present.
func bestErrorMessage(body []byte, statusCode int) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(statusCode)
}

var _ Submitter = (*Client)(nil)
