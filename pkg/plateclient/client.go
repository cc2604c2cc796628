// Package plateclient is a typed HTTP client for the plate service's
// internal ANPR event API, for use by sibling services.
package plateclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID              uuid.UUID  `json:"id"`
	CameraID        uuid.UUID  `json:"camera_id"`
	RawPlate        string     `json:"raw_plate"`
	NormalizedPlate *string    `json:"normalized_plate"`
	PlateFormat     *string    `json:"plate_format"`
	RejectionCode   *string    `json:"rejection_code"`
	VehicleID       *uuid.UUID `json:"vehicle_id"`
	DetectedAt      time.Time  `json:"detected_at"`
	Direction       *string    `json:"direction"`
	Confidence      *float64   `json:"confidence"`
}

type IngestInput struct {
	CameraID   string    `json:"camera_id"`
	Plate      string    `json:"plate"`
	EventTime  time.Time `json:"event_time"`
	Direction  *string   `json:"direction,omitempty"`
	Confidence *float64  `json:"confidence,omitempty"`
}

type IngestResult struct {
	EventID         uuid.UUID  `json:"event_id"`
	RawPlate        string     `json:"raw_plate"`
	NormalizedPlate *string    `json:"normalized_plate,omitempty"`
	PlateFormat     *string    `json:"plate_format,omitempty"`
	RejectionCode   *string    `json:"rejection_code,omitempty"`
	VehicleID       *uuid.UUID `json:"vehicle_id,omitempty"`
	Matched         bool       `json:"matched"`
}

type eventsEnvelope struct {
	Data []Event `json:"data"`
}

type ingestEnvelope struct {
	Data IngestResult `json:"data"`
}

type Client struct {
	baseURL       string
	internalToken string
	httpClient    *http.Client
}

func New(baseURL, internalToken string) *Client {
	return &Client{
		baseURL:       baseURL,
		internalToken: internalToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// EventsByPlate fetches detections for a plate within a time window.
// The plate may be any manual spelling; the service normalizes it.
func (c *Client) EventsByPlate(ctx context.Context, plate string, startTime, endTime time.Time, direction *string) ([]Event, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("plate service URL is not configured")
	}

	u, err := url.Parse(c.baseURL + "/internal/anpr/events")
	if err != nil {
		return nil, fmt.Errorf("invalid plate service URL: %w", err)
	}

	q := u.Query()
	q.Set("plate", plate)
	q.Set("start_time", startTime.Format(time.RFC3339))
	q.Set("end_time", endTime.Format(time.RFC3339))
	if direction != nil && *direction != "" {
		q.Set("direction", *direction)
	}
	u.RawQuery = q.Encode()

	body, err := c.do(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	var envelope eventsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return envelope.Data, nil
}

// Ingest submits a camera detection.
func (c *Client) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("plate service URL is not configured")
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.baseURL+"/internal/anpr/events", payload)
	if err != nil {
		return nil, err
	}

	var envelope ingestEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &envelope.Data, nil
}

// do executes a request with retry on network errors.
func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	newRequest := func() (*http.Request, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.internalToken != "" {
			req.Header.Set("X-Internal-Token", c.internalToken)
		}
		return req, nil
	}

	var resp *http.Response
	var lastErr error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := newRequest()
		if err != nil {
			return nil, err
		}
		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		if attempt == maxRetries-1 {
			return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries, lastErr)
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	if resp == nil {
		return nil, fmt.Errorf("failed to execute request: %w", lastErr)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("plate service returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
