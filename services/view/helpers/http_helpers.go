package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"artbid-client/internal/apiclient"
	"artbid-client/internal/auctionview"
	"artbid-client/internal/biderrors"
	"artbid-client/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain errors to HTTP status code and message. Backend
// rejections pass their own message through verbatim.
func MapErrorToHTTP(err error) (int, string) {
	var rejection *apiclient.RejectionError
	if errors.As(err, &rejection) {
		return rejection.StatusCode, rejection.Message
	}

	switch {
	case errors.Is(err, biderrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biderrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, biderrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount below minimum"
	case errors.Is(err, biderrors.ErrNotEligible):
		return http.StatusForbidden, "bidding not permitted"
	case errors.Is(err, biderrors.ErrBusy), errors.Is(err, biderrors.ErrNotReady):
		return http.StatusConflict, "auction view busy"
	default:
		return http.StatusBadGateway, "marketplace backend unavailable"
	}
}

// ViewResponseFrom flattens a controller snapshot into the wire DTO.
func ViewResponseFrom(snap auctionview.Snapshot) ViewResponse {
	resp := ViewResponse{
		State:            string(snap.State),
		Allowed:          snap.Decision.Allowed,
		Reason:           string(snap.Decision.Reason),
		ReasonMessage:    snap.Decision.Message(),
		MinimumBid:       snap.MinimumBid.StringFixed(2),
		RemainingDisplay: snap.RemainingDisplay,
		RemainingSeconds: int64(snap.Remaining / time.Second),
		Error:            snap.Error,
		Auction: AuctionDTO{
			AuctionID:    snap.Auction.AuctionID,
			Status:       string(snap.Auction.Status),
			WorkTitle:    snap.Auction.Work.Title,
			ArtistName:   snap.Auction.Work.Artist.Name,
			CurrentPrice: snap.Auction.CurrentPrice.StringFixed(2),
			MinIncrement: snap.Auction.MinIncrement.StringFixed(2),
			BidCount:     snap.Auction.BidCount,
			StartAt:      formatTime(snap.Auction.StartAt),
			EndAt:        formatTime(snap.Auction.EndAt),
		},
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
