package bidcheck

import (
	"errors"
	"testing"

	"artbid-client/internal/biderrors"
	"artbid-client/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func auctionWith(price, increment string) models.Auction {
	return models.Auction{
		AuctionID:    "auction1",
		Status:       models.StatusActive,
		CurrentPrice: decimal.RequireFromString(price),
		MinIncrement: decimal.RequireFromString(increment),
	}
}

func TestMinimumBid_ExactDecimalArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		increment string
		expected  string
	}{
		{name: "whole_units", price: "500.00", increment: "50.00", expected: "550.00"},
		{name: "cent_precision", price: "100.10", increment: "0.05", expected: "100.15"},
		{name: "float_drift_trap", price: "0.10", increment: "0.20", expected: "0.30"},
		{name: "large_amounts", price: "999999.99", increment: "0.01", expected: "1000000.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			minimum := MinimumBid(auctionWith(tc.price, tc.increment))
			require.True(t, minimum.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, minimum)
		})
	}
}

func TestValidate(t *testing.T) {
	auction := auctionWith("500.00", "50.00")

	tests := []struct {
		name        string
		proposed    string
		expectValid bool
		expectedErr error
	}{
		{name: "meets_minimum_exactly", proposed: "550.00", expectValid: true},
		{name: "above_minimum", proposed: "600.00", expectValid: true},
		{name: "below_minimum", proposed: "540.00", expectedErr: biderrors.ErrBidTooLow},
		{name: "equals_current_price", proposed: "500.00", expectedErr: biderrors.ErrBidTooLow},
		{name: "zero", proposed: "0", expectedErr: biderrors.ErrInvalidAmount},
		{name: "negative", proposed: "-10.00", expectedErr: biderrors.ErrInvalidAmount},
		{name: "sub_cent_precision", proposed: "550.001", expectedErr: biderrors.ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(decimal.RequireFromString(tc.proposed), auction)
			require.Equal(t, tc.expectValid, res.Valid)
			// the computed minimum rides along on every outcome
			require.True(t, res.Minimum.Equal(decimal.RequireFromString("550.00")))
			if tc.expectValid {
				require.NoError(t, res.Err)
			} else {
				require.Error(t, res.Err)
				require.True(t, errors.Is(res.Err, tc.expectedErr))
			}
		})
	}
}

func TestValidate_ErrorCitesMinimum(t *testing.T) {
	res := Validate(decimal.RequireFromString("540.00"), auctionWith("500.00", "50.00"))
	require.False(t, res.Valid)
	require.Contains(t, res.Err.Error(), "550.00")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expectError bool
	}{
		{name: "plain_number", raw: "123.45"},
		{name: "integer", raw: "600"},
		{name: "empty", raw: "", expectError: true},
		{name: "not_a_number", raw: "abc", expectError: true},
		{name: "infinity", raw: "Inf", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, biderrors.ErrInvalidAmount))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
