package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state reported by the marketplace backend.
type AuctionStatus string

const (
	StatusScheduled AuctionStatus = "scheduled"
	StatusActive    AuctionStatus = "active"
	StatusFinalized AuctionStatus = "finalized"
	StatusCancelled AuctionStatus = "cancelled"
)

// Role classifies the local session's identity.
type Role string

const (
	RoleGuest       Role = "guest"
	RoleAdmin       Role = "admin"
	RoleRegularUser Role = "regular-user"
	RoleArtist      Role = "artist"
)

// Artist is the creator who owns a work.
type Artist struct {
	ArtistID string `json:"artist_id"`
	Name     string `json:"name"`
}

// Work represents the item under sale, including its owning artist.
type Work struct {
	WorkID      string `json:"work_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Artist      Artist `json:"artist"`
}

// Bid represents one offer against an auction.
type Bid struct {
	BidID    string          `json:"bid_id"`
	BidderID string          `json:"bidder_id"`
	Amount   decimal.Decimal `json:"amount"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Auction is the client-side cached copy of one timed sale. It is owned and
// mutated exclusively by the remote backend; treat it as potentially stale
// and re-fetch after any mutating action.
type Auction struct {
	AuctionID    string          `json:"auction_id"`
	Status       AuctionStatus   `json:"status"`
	StartAt      time.Time       `json:"start_at"`
	EndAt        time.Time       `json:"end_at"`
	InitialPrice decimal.Decimal `json:"initial_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MinIncrement decimal.Decimal `json:"min_increment"`
	WinnerID     string          `json:"winner_id,omitempty"`
	Work         Work            `json:"work"`
	BidCount     int             `json:"bid_count"`
	Bids         []Bid           `json:"bids,omitempty"` // ordered amount desc, ties by earliest placed_at
}

// EffectiveStatus derives the auction's status at the given instant. The
// stored status can be stale: a fetched "active" auction whose deadline has
// already passed must evaluate as finalized without another round-trip.
func (a Auction) EffectiveStatus(now time.Time) AuctionStatus {
	switch a.Status {
	case StatusFinalized, StatusCancelled:
		return a.Status
	}
	if !a.EndAt.IsZero() && !now.Before(a.EndAt) {
		return StatusFinalized
	}
	if a.Status == StatusScheduled && !a.StartAt.IsZero() && !now.Before(a.StartAt) {
		return StatusActive
	}
	return a.Status
}

// TopBid returns the canonical winning bid so far, if any.
func (a Auction) TopBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	top := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount.GreaterThan(top.Amount) || (b.Amount.Equal(top.Amount) && b.PlacedAt.Before(top.PlacedAt)) {
			top = b
		}
	}
	return top, true
}

// Viewer is the local session's identity. ArtistID is the canonical artist
// identifier resolved at login; empty unless the viewer is an artist.
type Viewer struct {
	UserID   string `json:"user_id"`
	Role     Role   `json:"role"`
	ArtistID string `json:"artist_id,omitempty"`
}

// Authenticated reports whether the viewer carries a signed-in identity.
func (v Viewer) Authenticated() bool {
	return v.Role != RoleGuest && v.Role != "" && v.UserID != ""
}
