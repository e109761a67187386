package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"artbid-client/internal/biderrors"
	"artbid-client/internal/models"

	"github.com/shopspring/decimal"
)

// Client is the marketplace backend as seen by the bidding views. The backend
// owns all durable state; every response is an authoritative snapshot.
type Client interface {
	FetchAuction(ctx context.Context, auctionID string) (models.Auction, error)
	SubmitBid(ctx context.Context, auctionID string, req BidRequest) (models.Bid, error)
	UpdateDeadline(ctx context.Context, auctionID string, endAt time.Time) (models.Auction, error)
}

// BidRequest is the payload for a bid submission. IdempotencyKey is generated
// fresh per user-initiated attempt; the client never retries a submission on
// its own.
type BidRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// RejectionError is a structured backend refusal (4xx with a message), as
// opposed to a transport failure. Its message reflects authoritative state
// the client could not have known (e.g. a concurrent higher bid) and must be
// shown to the user verbatim.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
}

// envelope is the backend's JSON response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// HTTPClient talks to the marketplace REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
}

// NewHTTPClient builds a client for the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		headers: make(map[string]string),
	}
}

// SetHeader attaches a header to every outgoing request (auth token etc.).
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout overrides the default per-request timeout.
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

func (c *HTTPClient) makeRequest(ctx context.Context, method, endpoint string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: failed to read response body: %w", err)
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(responseBody, &env); unmarshalErr != nil && resp.StatusCode < 400 {
		return nil, fmt.Errorf("apiclient: failed to decode response: %w", unmarshalErr)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("apiclient: %s: %w", endpoint, biderrors.ErrAuctionNotFound)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		message := env.Message
		if message == "" {
			message = env.Error
		}
		if message == "" {
			message = string(responseBody)
		}
		return nil, &RejectionError{StatusCode: resp.StatusCode, Message: message}
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("apiclient: backend returned status %d: %s", resp.StatusCode, string(responseBody))
	}

	return env.Data, nil
}

// FetchAuction returns the current auction entity including nested work,
// artist and bids.
func (c *HTTPClient) FetchAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	data, err := c.makeRequest(ctx, http.MethodGet, "/auctions/"+auctionID, nil)
	if err != nil {
		return models.Auction{}, fmt.Errorf("fetch auction %s: %w", auctionID, err)
	}

	var auction models.Auction
	if err := json.Unmarshal(data, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("fetch auction %s: failed to decode payload: %w", auctionID, err)
	}
	return auction, nil
}

// SubmitBid posts one bid. The returned bid is informational only; callers
// must re-fetch the auction for canonical price and bid-count state.
func (c *HTTPClient) SubmitBid(ctx context.Context, auctionID string, req BidRequest) (models.Bid, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return models.Bid{}, fmt.Errorf("submit bid for auction %s: %w", auctionID, err)
	}

	data, err := c.makeRequest(ctx, http.MethodPost, "/auctions/"+auctionID+"/bids", bytes.NewReader(payload))
	if err != nil {
		return models.Bid{}, fmt.Errorf("submit bid for auction %s: %w", auctionID, err)
	}

	var bid models.Bid
	if err := json.Unmarshal(data, &bid); err != nil {
		return models.Bid{}, fmt.Errorf("submit bid for auction %s: failed to decode payload: %w", auctionID, err)
	}
	return bid, nil
}

// UpdateDeadline moves the auction's end timestamp. Admin only; the backend
// enforces authorization, this client just carries the call.
func (c *HTTPClient) UpdateDeadline(ctx context.Context, auctionID string, endAt time.Time) (models.Auction, error) {
	payload, err := json.Marshal(map[string]string{"end_at": endAt.UTC().Format(time.RFC3339)})
	if err != nil {
		return models.Auction{}, fmt.Errorf("update deadline for auction %s: %w", auctionID, err)
	}

	data, err := c.makeRequest(ctx, http.MethodPut, "/auctions/"+auctionID+"/deadline", bytes.NewReader(payload))
	if err != nil {
		return models.Auction{}, fmt.Errorf("update deadline for auction %s: %w", auctionID, err)
	}

	var auction models.Auction
	if err := json.Unmarshal(data, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("update deadline for auction %s: failed to decode payload: %w", auctionID, err)
	}
	return auction, nil
}
