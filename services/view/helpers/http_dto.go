package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type UpdateDeadlineRequest struct {
	EndAt string `json:"end_at" binding:"required"` // RFC 3339
}

type ViewResponse struct {
	State            string     `json:"state"`
	Auction          AuctionDTO `json:"auction"`
	Allowed          bool       `json:"allowed"`
	Reason           string     `json:"reason"`
	ReasonMessage    string     `json:"reason_message,omitempty"`
	MinimumBid       string     `json:"minimum_bid"`
	RemainingDisplay string     `json:"remaining_display"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	Error            string     `json:"error,omitempty"`
}

type AuctionDTO struct {
	AuctionID    string `json:"auction_id"`
	Status       string `json:"status"`
	WorkTitle    string `json:"work_title"`
	ArtistName   string `json:"artist_name"`
	CurrentPrice string `json:"current_price"`
	MinIncrement string `json:"min_increment"`
	BidCount     int    `json:"bid_count"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
}
