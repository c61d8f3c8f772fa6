package tip20

import (
	"fmt"
	"math/big"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ToBaseUnits converts a display amount into integer base units of the token.
// Amounts with more fractional digits than the token supports are rejected
// rather than rounded.
func ToBaseUnits(amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	shifted := amount.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: amount %s exceeds %d decimal places", apperrors.ErrPrecision, amount.String(), decimals)
	}
	return shifted.BigInt(), nil
}

// FromBaseUnits converts raw integer base units into a display amount.
func FromBaseUnits(raw *big.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -int32(decimals))
}
