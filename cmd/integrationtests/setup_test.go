package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"artbid-client/internal/apiclient"
	model "artbid-client/internal/models"
	"artbid-client/internal/server"
	"artbid-client/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// stubBackend plays the remote marketplace: it owns the durable auction state
// the gateway treats as authoritative, including the re-validation that can
// reject a bid the client considered fine.
type stubBackend struct {
	mu       sync.Mutex
	auctions map[string]model.Auction
}

func newStubBackend(auctions ...model.Auction) *stubBackend {
	b := &stubBackend{auctions: make(map[string]model.Auction)}
	for _, a := range auctions {
		b.auctions[a.AuctionID] = a
	}
	return b
}

func (b *stubBackend) handler() http.Handler {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/auctions/:auction_id", func(c *gin.Context) {
		b.mu.Lock()
		auction, ok := b.auctions[c.Param("auction_id")]
		b.mu.Unlock()
		if !ok {
			utils.JSONError(c, http.StatusNotFound, nil, "auction not found")
			return
		}
		utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	})

	router.POST("/auctions/:auction_id/bids", func(c *gin.Context) {
		var req apiclient.BidRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid request payload")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		auction, ok := b.auctions[c.Param("auction_id")]
		if !ok {
			utils.JSONError(c, http.StatusNotFound, nil, "auction not found")
			return
		}
		if auction.Status != model.StatusActive || time.Now().After(auction.EndAt) {
			utils.JSONError(c, http.StatusConflict, nil, "auction closed")
			return
		}
		minimum := auction.CurrentPrice.Add(auction.MinIncrement)
		if req.Amount.LessThan(minimum) {
			utils.JSONError(c, http.StatusConflict, nil, "bid amount too low: minimum is "+minimum.StringFixed(2))
			return
		}

		bid := model.Bid{
			BidID:    utils.GenerateID(),
			BidderID: c.GetHeader("X-User-Id"),
			Amount:   req.Amount,
			PlacedAt: time.Now().UTC(),
		}
		auction.CurrentPrice = req.Amount
		auction.BidCount++
		auction.Bids = append([]model.Bid{bid}, auction.Bids...)
		b.auctions[auction.AuctionID] = auction

		utils.JSONResponse(c, http.StatusCreated, bid, "bid recorded successfully")
	})

	router.PUT("/auctions/:auction_id/deadline", func(c *gin.Context) {
		var req struct {
			EndAt string `json:"end_at" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid request payload")
			return
		}
		endAt, err := time.Parse(time.RFC3339, req.EndAt)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid end_at timestamp")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		auction, ok := b.auctions[c.Param("auction_id")]
		if !ok {
			utils.JSONError(c, http.StatusNotFound, nil, "auction not found")
			return
		}
		auction.EndAt = endAt
		b.auctions[auction.AuctionID] = auction
		utils.JSONResponse(c, http.StatusOK, auction, "deadline updated successfully")
	})

	return router
}

// SetupGateway spins a stub marketplace plus the view gateway wired to it.
func SetupGateway(t *testing.T, auctions ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(newStubBackend(auctions...).handler())
	t.Cleanup(backend.Close)

	api := apiclient.NewHTTPClient(backend.URL)
	return server.SetupRouter(api, clockwork.NewRealClock())
}

// ActiveAuction builds a live auction fixture priced in whole currency units.
func ActiveAuction(id, ownerArtistID, price, increment string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:    id,
		Status:       model.StatusActive,
		StartAt:      now.Add(-time.Hour),
		EndAt:        now.Add(time.Hour),
		InitialPrice: decimal.RequireFromString(price),
		CurrentPrice: decimal.RequireFromString(price),
		MinIncrement: decimal.RequireFromString(increment),
		Work: model.Work{
			WorkID: id + "-work",
			Title:  "Work " + id,
			Artist: model.Artist{ArtistID: ownerArtistID, Name: "Artist " + ownerArtistID},
		},
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// ViewData pulls the data envelope out of a gateway response.
func ViewData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
