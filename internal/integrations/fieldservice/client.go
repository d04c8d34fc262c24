package fieldservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the FieldService catalogue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetField fetches a field profile by ID.
func (c *Client) GetField(ctx context.Context, fieldID int64) (*Field, error) {
	url := fmt.Sprintf("%s/internal/fields/%d", c.baseURL, fieldID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid field ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrFieldNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var field Field
	if err := json.NewDecoder(resp.Body).Decode(&field); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &field, nil
}

// GetActiveField fetches a field and logs the lookup. Inactive fields are
// reported as not found so callers never schedule against a delisted field.
func (c *Client) GetActiveField(ctx context.Context, fieldID int64) (*Field, error) {
	c.log.Info("Fetching field profile for field_id=%d", fieldID)

	field, err := c.GetField(ctx, fieldID)
	if err != nil {
		if err == ErrFieldNotFound {
			c.log.Info("Field not found: field_id=%d", fieldID)
			return nil, err
		}
		c.log.Error("FieldService lookup failed for field_id=%d: %v", fieldID, err)
		return nil, err
	}

	if !field.IsActive {
		c.log.Warn("Field is inactive: field_id=%d", fieldID)
		return nil, ErrFieldNotFound
	}

	return field, nil
}
