package handler

import (
	"fmt"
	"net/http"
	"time"

	"artbid-client/internal/apiclient"
	"artbid-client/internal/auctionview"
	"artbid-client/internal/models"
	"artbid-client/services/view/helpers"
	"artbid-client/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// ViewerContextKey is where the session middleware stores the resolved viewer.
const ViewerContextKey = "viewer"

// ViewHandler serves the per-auction bid view model over HTTP. Each request
// mounts a short-lived view controller, renders one snapshot and tears it
// down; long-lived countdown state belongs to the consuming page, not to
// this gateway.
type ViewHandler struct {
	api   apiclient.Client
	clock clockwork.Clock
}

func NewViewHandler(api apiclient.Client, clock clockwork.Clock) *ViewHandler {
	return &ViewHandler{api: api, clock: clock}
}

func viewerFrom(c *gin.Context) models.Viewer {
	if v, ok := c.Get(ViewerContextKey); ok {
		if viewer, ok := v.(models.Viewer); ok {
			return viewer
		}
	}
	return models.Viewer{Role: models.RoleGuest}
}

// mount builds and loads a controller for the request's auction and viewer.
// The caller owns Close.
func (h *ViewHandler) mount(c *gin.Context, auctionID string) (*auctionview.Controller, error) {
	ctrl := auctionview.NewController(h.api, h.clock, auctionID, viewerFrom(c))
	if err := ctrl.Load(c.Request.Context()); err != nil {
		ctrl.Close()
		return nil, err
	}
	return ctrl, nil
}

// GetAuctionViewHandler handles GET /auctions/:auction_id/view
func (h *ViewHandler) GetAuctionViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	ctrl, err := h.mount(c, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionViewHandler: failed to load auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	defer ctrl.Close()

	resp := helpers.ViewResponseFrom(ctrl.Snapshot())
	utils.JSONResponse(c, http.StatusOK, resp, "auction view retrieved successfully")
	helpers.LogSuccess("GetAuctionViewHandler", "auction view retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"allowed":    resp.Allowed,
		"reason":     resp.Reason,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *ViewHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	ctrl, err := h.mount(c, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	defer ctrl.Close()

	if err := ctrl.SubmitBid(c.Request.Context(), req.Amount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ViewResponseFrom(ctrl.Snapshot())
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    auctionID,
		"amount":        req.Amount,
		"current_price": resp.Auction.CurrentPrice,
	})
}

// UpdateDeadlineHandler handles PUT /auctions/:auction_id/deadline. The
// backend enforces the admin requirement; this handler just refuses the
// obvious cases before the round-trip.
func (h *ViewHandler) UpdateDeadlineHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if viewerFrom(c).Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, fmt.Errorf("deadline updates are admin only"), "deadline updates are admin only")
		return
	}

	var req helpers.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateDeadlineHandler", err)
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid end_at timestamp: %w", err), "invalid end_at timestamp")
		return
	}

	ctrl, err := h.mount(c, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	defer ctrl.Close()

	if err := ctrl.UpdateDeadline(c.Request.Context(), endAt); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateDeadlineHandler: failed to update deadline", map[string]any{
			"auction_id": auctionID,
			"end_at":     req.EndAt,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ViewResponseFrom(ctrl.Snapshot())
	utils.JSONResponse(c, http.StatusOK, resp, "deadline updated successfully")
	helpers.LogSuccess("UpdateDeadlineHandler", "deadline updated successfully", map[string]any{
		"auction_id": auctionID,
		"end_at":     req.EndAt,
	})
}
