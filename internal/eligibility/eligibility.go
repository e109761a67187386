package eligibility

import (
	"time"

	"artbid-client/internal/models"
)

// Reason explains why bidding is blocked for a viewer, or that it is not.
type Reason string

const (
	ReasonEligible        Reason = "eligible"
	ReasonRequiresAuth    Reason = "requires-authentication"
	ReasonAdminExcluded   Reason = "admin-role-excluded"
	ReasonSelfOwnership   Reason = "self-ownership-conflict"
	ReasonAuctionInactive Reason = "auction-not-active"
)

// Decision is the outcome of an eligibility evaluation. Blocked viewers are a
// normal rendered state (disabled form plus message), never an error.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason"`
}

// Evaluate decides whether the viewer may bid on the auction at the given
// instant. Pure: no side effects, no clock reads, no network. Callers
// re-evaluate whenever any input changes, since eligibility can flip
// mid-session (auction expires, admin edits the deadline).
//
// Rules apply in order, first match wins:
//  1. unauthenticated viewer
//  2. admin role (admins manage, never participate)
//  3. viewer owns the work under auction
//  4. auction not currently active
//
// Non-owner artists and regular users are both eligible.
func Evaluate(viewer models.Viewer, auction models.Auction, now time.Time) Decision {
	if !viewer.Authenticated() {
		return Decision{Allowed: false, Reason: ReasonRequiresAuth}
	}
	if viewer.Role == models.RoleAdmin {
		return Decision{Allowed: false, Reason: ReasonAdminExcluded}
	}
	if viewer.ArtistID != "" && viewer.ArtistID == auction.Work.Artist.ArtistID {
		return Decision{Allowed: false, Reason: ReasonSelfOwnership}
	}
	if auction.EffectiveStatus(now) != models.StatusActive {
		return Decision{Allowed: false, Reason: ReasonAuctionInactive}
	}
	return Decision{Allowed: true, Reason: ReasonEligible}
}

// Message renders a human-readable explanation for a blocked decision.
func (d Decision) Message() string {
	switch d.Reason {
	case ReasonRequiresAuth:
		return "sign in to place a bid"
	case ReasonAdminExcluded:
		return "administrators cannot participate in auctions"
	case ReasonSelfOwnership:
		return "you cannot bid on your own work"
	case ReasonAuctionInactive:
		return "this auction is not accepting bids"
	default:
		return ""
	}
}
