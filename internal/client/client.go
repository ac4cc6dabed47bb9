package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

// defaultTimeout bounds a single HTTP exchange when the caller's context
// carries no deadline.
const defaultTimeout = 30 * time.Second

// Client talks to one Alpaca server.
//
// Every request carries the session's ClientID and a fresh
// ClientTransactionID from an atomic counter, so concurrent use from
// multiple goroutines is safe.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *logging.Logger
	clientID uint32
	txnID    atomic.Uint32
}

// New creates a client for the Alpaca server at baseURL
// (e.g. "http://192.168.1.20:11111").
func New(baseURL string, clientID uint32, logger *logging.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must be http or https", baseURL)
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   logger.With("component", "client"),
		clientID: clientID,
	}, nil
}

// envelope mirrors the Alpaca response envelope with the Value left raw
// for the typed accessors to decode.
type envelope struct {
	ClientTransactionID uint32          `json:"ClientTransactionID"`
	ServerTransactionID uint32          `json:"ServerTransactionID"`
	ErrorNumber         int32           `json:"ErrorNumber"`
	ErrorMessage        string          `json:"ErrorMessage"`
	Value               json.RawMessage `json:"Value"`
}

// transactionParams returns the identity parameters for one request and
// the transaction ID used, for reply verification.
func (c *Client) transactionParams() (url.Values, uint32) {
	txn := c.txnID.Add(1)
	params := url.Values{
		"ClientID":            {strconv.FormatUint(uint64(c.clientID), 10)},
		"ClientTransactionID": {strconv.FormatUint(uint64(txn), 10)},
	}
	return params, txn
}

// roundTrip performs one exchange and separates the three outcomes:
// transport failure (error), protocol error (*ascom.Error), success
// (raw Value).
func (c *Client) roundTrip(req *http.Request, sentTxn uint32) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpaca request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("alpaca server rejected request: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	if env.ClientTransactionID != sentTxn {
		// Echo mismatches indicate a confused server but the payload is
		// still usable; note it and carry on.
		c.logger.Warn("transaction ID echo mismatch",
			"sent", sentTxn,
			"received", env.ClientTransactionID,
			"url", req.URL.Path,
		)
	}

	if env.ErrorNumber != 0 {
		return nil, &ascom.Error{Number: env.ErrorNumber, Message: env.ErrorMessage}
	}
	return env.Value, nil
}

// get performs a getter request against an API path relative to the
// server root.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	params, txn := c.transactionParams()
	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	return c.roundTrip(req, txn)
}

// putValue performs a setter request that returns a Value (the action
// operation does this).
func (c *Client) putValue(ctx context.Context, path string, form url.Values) (json.RawMessage, error) {
	params, txn := c.transactionParams()
	merged := url.Values{}
	for key, vals := range form {
		merged[key] = vals
	}
	for key, vals := range params {
		merged[key] = vals
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, strings.NewReader(merged.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.roundTrip(req, txn)
}

// put performs a setter request with form-encoded parameters.
func (c *Client) put(ctx context.Context, path string, form url.Values) error {
	_, err := c.putValue(ctx, path, form)
	return err
}

// getInto decodes a getter's Value into out.
func (c *Client) getInto(ctx context.Context, path string, out any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding value for %s: %w", path, err)
	}
	return nil
}
