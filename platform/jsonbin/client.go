package jsonbin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable is returned when the store cannot be reached or refuses a read.
// A failed read is never reported as an empty record: treating an unreachable
// store as empty would let the next write erase real data.
var ErrUnavailable = errors.New("document store unavailable")

// ErrWriteFailed is returned when the store rejects a write
var ErrWriteFailed = errors.New("document store write failed")

// Client talks to a single JSONBin.io v3 bin. Every read fetches the full
// record and every write replaces it. There are no retries and no revision
// token: concurrent read-modify-write cycles are last-writer-wins.
type Client struct {
	baseURL   string
	binID     string
	accessKey string
	httpc     *http.Client
}

// New creates a client for one bin
func New(baseURL, binID, accessKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		binID:     binID,
		accessKey: accessKey,
		httpc:     http.DefaultClient,
	}
}

// ReadLatest fetches the latest version of the record into out. A null or
// missing record leaves out untouched.
func (c *Client) ReadLatest(ctx context.Context, out any) error {
	url := fmt.Sprintf("%s/b/%s/latest", c.baseURL, c.binID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build read request: %w", err)
	}
	req.Header.Set("X-Access-Key", c.accessKey)

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, res.StatusCode, body)
	}

	var envelope struct {
		Record json.RawMessage `json:"record"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %s", ErrUnavailable, err)
	}
	if len(envelope.Record) == 0 || string(envelope.Record) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Record, out); err != nil {
		return fmt.Errorf("%w: decoding record: %s", ErrUnavailable, err)
	}
	return nil
}

// Update replaces the whole record
func (c *Client) Update(ctx context.Context, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	url := fmt.Sprintf("%s/b/%s", c.baseURL, c.binID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build write request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Access-Key", c.accessKey)

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%w: status %d: %s", ErrWriteFailed, res.StatusCode, body)
	}
	return nil
}
