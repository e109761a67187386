package bidcheck

import (
	"fmt"

	"artbid-client/internal/biderrors"
	"artbid-client/internal/models"

	"github.com/shopspring/decimal"
)

// maxDecimalPlaces bounds monetary precision; the marketplace prices works in
// whole currency units and cents.
const maxDecimalPlaces = 2

// MinimumBid computes the smallest acceptable next bid: current price plus
// the auction's fixed increment, with exact decimal arithmetic.
func MinimumBid(auction models.Auction) decimal.Decimal {
	return auction.CurrentPrice.Add(auction.MinIncrement)
}

// Result carries a validation outcome plus the computed minimum so the form
// can always tell the user what would have been acceptable.
type Result struct {
	Valid   bool
	Minimum decimal.Decimal
	Err     error
}

// Validate checks a proposed amount against the auction's minimum. This check
// is advisory: the backend re-validates authoritatively and may still reject
// an amount that passes here (a concurrent higher bid), so the submission
// call remains the source of truth.
func Validate(proposed decimal.Decimal, auction models.Auction) Result {
	minimum := MinimumBid(auction)

	if proposed.LessThanOrEqual(decimal.Zero) {
		return Result{
			Minimum: minimum,
			Err:     fmt.Errorf("%w: amount must be positive", biderrors.ErrInvalidAmount),
		}
	}
	if !proposed.Equal(proposed.Truncate(maxDecimalPlaces)) {
		return Result{
			Minimum: minimum,
			Err:     fmt.Errorf("%w: amounts use at most %d decimal places", biderrors.ErrInvalidAmount, maxDecimalPlaces),
		}
	}
	if proposed.LessThan(minimum) {
		return Result{
			Minimum: minimum,
			Err:     fmt.Errorf("%w: minimum bid is %s", biderrors.ErrBidTooLow, minimum.StringFixed(2)),
		}
	}
	return Result{Valid: true, Minimum: minimum}
}

// Parse converts user-typed input into a bid amount. Anything that is not a
// finite decimal number is an input error, surfaced inline, never a panic.
func Parse(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", biderrors.ErrInvalidAmount, raw)
	}
	return amount, nil
}
