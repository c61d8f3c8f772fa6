package tip20

import (
	"math/big"
	"testing"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		want    string
		wantErr bool
	}{
		{name: "Whole amount", amount: "500", want: "500000000"},
		{name: "Fractional amount", amount: "1.25", want: "1250000"},
		{name: "Full precision", amount: "0.000001", want: "1"},
		{name: "Zero", amount: "0", want: "0"},
		{name: "Too many decimal places", amount: "0.0000001", wantErr: true},
		{name: "Seven places non-trailing", amount: "12.3456789", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amt, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)

			got, err := ToBaseUnits(amt, 6)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrPrecision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestFromBaseUnits(t *testing.T) {
	raw := big.NewInt(1_250_000)
	got := FromBaseUnits(raw, 6)
	assert.True(t, got.Equal(decimal.RequireFromString("1.25")), "got %s", got)
}

func TestRoundTrip(t *testing.T) {
	amt := decimal.RequireFromString("9876.543210")
	raw, err := ToBaseUnits(amt, 6)
	require.NoError(t, err)
	assert.True(t, amt.Equal(FromBaseUnits(raw, 6)))
}
