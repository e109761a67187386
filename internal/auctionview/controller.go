package auctionview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"artbid-client/internal/apiclient"
	"artbid-client/internal/bidcheck"
	"artbid-client/internal/biderrors"
	"artbid-client/internal/countdown"
	"artbid-client/internal/eligibility"
	"artbid-client/internal/models"
	"artbid-client/utils"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// State is the controller's position in the view lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateLoadError  State = "load-error"
	StateSubmitting State = "submitting-bid"
)

// Controller owns the per-auction view state machine: fetch-on-mount,
// post-bid refresh, deadline-edit refresh, and reconciliation of the local
// snapshot with the authoritative backend. One Controller per mounted view;
// the countdown engine and auction snapshot it holds are never shared.
type Controller struct {
	api       apiclient.Client
	clock     clockwork.Clock
	auctionID string
	viewer    models.Viewer

	mu         sync.Mutex
	state      State
	auction    models.Auction
	engine     *countdown.Engine
	generation uint64
	lastErr    error
	lastAmount string
	closed     bool
}

// NewController builds a controller for one auction view. Nothing is fetched
// until Load.
func NewController(api apiclient.Client, clock clockwork.Clock, auctionID string, viewer models.Viewer) *Controller {
	return &Controller{
		api:       api,
		clock:     clock,
		auctionID: auctionID,
		viewer:    viewer,
		state:     StateIdle,
	}
}

// Load performs the mount-time fetch: idle→loading→{ready|load-error}.
// Calling it again from load-error is the manual retry path.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrClosed)
	}
	if c.state == StateLoading || c.state == StateSubmitting {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrBusy)
	}
	c.state = StateLoading
	c.lastErr = nil
	c.mu.Unlock()

	if err := c.refresh(ctx); err != nil {
		c.mu.Lock()
		if !c.closed {
			c.state = StateLoadError
			c.lastErr = err
		}
		c.mu.Unlock()
		return err
	}
	return nil
}

// SubmitBid validates and submits the user's typed amount. Clearly-invalid
// input fails fast with no network round-trip. On success the auction is
// re-fetched, since canonical price and bid count must come from the backend,
// not from the bid response alone. A failed submission keeps the typed amount
// around for correction and is never retried automatically.
func (c *Controller) SubmitBid(ctx context.Context, rawAmount string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrClosed)
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrBusy)
	}
	if c.state != StateReady {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrNotReady)
	}

	decision := eligibility.Evaluate(c.viewer, c.auction, c.clock.Now())
	if !decision.Allowed {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w: %s", biderrors.ErrNotEligible, decision.Message())
	}

	c.lastAmount = rawAmount
	amount, err := bidcheck.Parse(rawAmount)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if res := bidcheck.Validate(amount, c.auction); !res.Valid {
		c.mu.Unlock()
		return res.Err
	}

	c.state = StateSubmitting
	c.lastErr = nil
	c.mu.Unlock()

	// fresh key per user-initiated attempt
	_, submitErr := c.api.SubmitBid(ctx, c.auctionID, apiclient.BidRequest{
		Amount:         amount,
		IdempotencyKey: utils.GenerateID(),
	})
	if submitErr != nil {
		c.mu.Lock()
		if !c.closed {
			c.state = StateReady
			c.lastErr = submitErr
		}
		c.mu.Unlock()

		var rejection *apiclient.RejectionError
		if errors.As(submitErr, &rejection) {
			utils.Warn("bid rejected by backend", map[string]any{
				"auction_id": c.auctionID,
				"message":    rejection.Message,
			})
		}
		return submitErr
	}

	c.mu.Lock()
	c.lastAmount = ""
	c.mu.Unlock()

	if err := c.refresh(ctx); err != nil {
		// the bid landed; only the confirming re-fetch failed
		c.mu.Lock()
		if !c.closed {
			c.state = StateReady
			c.lastErr = err
		}
		c.mu.Unlock()
		return err
	}
	return nil
}

// RefreshDeadline re-fetches after an externally observed deadline change
// (an admin edited it from another view) and restarts the countdown.
func (c *Controller) RefreshDeadline(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrClosed)
	}
	c.mu.Unlock()
	return c.refresh(ctx)
}

// UpdateDeadline is the admin path: push the new end timestamp to the
// backend, then adopt its authoritative response.
func (c *Controller) UpdateDeadline(ctx context.Context, endAt time.Time) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("auctionview: %w", biderrors.ErrClosed)
	}
	gen := c.nextGenerationLocked()
	c.mu.Unlock()

	auction, err := c.api.UpdateDeadline(ctx, c.auctionID, endAt)
	if err != nil {
		c.mu.Lock()
		if !c.closed {
			c.lastErr = err
		}
		c.mu.Unlock()
		return err
	}

	c.adopt(gen, auction)
	return nil
}

// refresh fetches the auction and, if this call is still the newest one,
// adopts the payload and restarts the countdown. Overlapping refreshes
// resolve to the latest: earlier in-flight results are discarded, so exactly
// one timer survives.
func (c *Controller) refresh(ctx context.Context) error {
	c.mu.Lock()
	gen := c.nextGenerationLocked()
	c.mu.Unlock()

	auction, err := c.api.FetchAuction(ctx, c.auctionID)
	if err != nil {
		return err
	}

	c.adopt(gen, auction)
	return nil
}

// nextGenerationLocked stamps a new fetch generation. Callers hold c.mu.
func (c *Controller) nextGenerationLocked() uint64 {
	c.generation++
	return c.generation
}

// adopt installs an authoritative auction payload unless the view was torn
// down or a newer fetch superseded this one. The previous countdown engine is
// always stopped before its replacement starts.
func (c *Controller) adopt(gen uint64, auction models.Auction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		return // stale response, drop it
	}

	c.auction = auction
	c.state = StateReady
	c.lastErr = nil

	if c.engine != nil {
		c.engine.Stop()
		c.engine = nil
	}
	engine, err := countdown.New(c.clock, auction.EndAt, nil)
	if err != nil {
		// missing deadline renders a neutral loading display, no tick loop
		utils.Warn("auction payload has no deadline", map[string]any{
			"auction_id": c.auctionID,
		})
		return
	}
	c.engine = engine
	engine.Start()
}

// Snapshot renders the current view model. Eligibility and remaining time
// are recomputed against the clock on every call, so an expiry between
// snapshots flips the form to disabled without any re-fetch.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:      c.state,
		Auction:    c.auction,
		LastAmount: c.lastAmount,
	}
	if c.lastErr != nil {
		snap.Error = userFacingMessage(c.lastErr)
	}
	if c.state != StateReady && c.state != StateSubmitting {
		snap.RemainingDisplay = countdown.Unknown
		return snap
	}

	now := c.clock.Now()
	snap.Decision = eligibility.Evaluate(c.viewer, c.auction, now)
	snap.MinimumBid = bidcheck.MinimumBid(c.auction)

	if c.engine == nil {
		snap.RemainingDisplay = countdown.Unknown
		return snap
	}
	snap.Remaining = c.engine.Remaining()
	snap.RemainingKnown = true
	snap.RemainingDisplay = countdown.Format(snap.Remaining)
	return snap
}

// Ticks exposes the countdown stream for the current deadline, or nil while
// no deadline is known.
func (c *Controller) Ticks() <-chan time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine == nil {
		return nil
	}
	return c.engine.C()
}

// Close tears the view down: the countdown stops and any in-flight fetch
// result becomes a no-op. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++ // invalidate in-flight fetches
	if c.engine != nil {
		c.engine.Stop()
		c.engine = nil
	}
}

// Snapshot is everything a bid view needs to render one frame.
type Snapshot struct {
	State            State                `json:"state"`
	Auction          models.Auction       `json:"auction"`
	Decision         eligibility.Decision `json:"decision"`
	MinimumBid       decimal.Decimal      `json:"minimum_bid"`
	Remaining        time.Duration        `json:"-"`
	RemainingKnown   bool                 `json:"remaining_known"`
	RemainingDisplay string               `json:"remaining_display"`
	LastAmount       string               `json:"last_amount,omitempty"`
	Error            string               `json:"error,omitempty"`
}

// userFacingMessage keeps server rejection text verbatim and flattens
// transport noise into something renderable.
func userFacingMessage(err error) string {
	var rejection *apiclient.RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}
	if errors.Is(err, biderrors.ErrAuctionNotFound) {
		return "auction not found"
	}
	return "request failed, please try again"
}
