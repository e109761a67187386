package biderrors

import "errors"

// API-client errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionClosed   = errors.New("auction closed")
)

// validation errors
var (
	ErrInvalidAmount = errors.New("invalid bid amount")
	ErrBidTooLow     = errors.New("bid amount below minimum")
	ErrNotEligible   = errors.New("viewer not eligible to bid")
)

// controller errors
var (
	ErrNoDeadline = errors.New("auction deadline missing")
	ErrNotReady   = errors.New("auction view not ready")
	ErrBusy       = errors.New("bid submission already in flight")
	ErrClosed     = errors.New("auction view torn down")
)
