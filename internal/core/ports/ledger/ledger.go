// Package ledger defines the typed interface to the external token ledger.
// The remote service is trusted to execute balance reads and transfers
// correctly; wallet custody and signing live behind it.
package ledger

import (
	"context"
	"math/big"
)

// MemoLength is the fixed byte width of the memo field attached to a transfer.
const MemoLength = 32

// TokenLedgerClient is the boundary to the external token ledger. Amounts
// are raw integers in the token's smallest unit; Decimals reports the
// fixed-point scale used for conversion.
type TokenLedgerClient interface {
	// BalanceOf returns the raw balance of an address in base units.
	BalanceOf(ctx context.Context, account string) (*big.Int, error)

	// Decimals returns the token's fixed-point scale (expected constant, typically 6).
	Decimals(ctx context.Context) (uint8, error)

	// TransferWithMemo submits a funded transfer with a fixed 32-byte memo
	// and returns the transaction hash.
	TransferWithMemo(ctx context.Context, to string, amount *big.Int, memo [MemoLength]byte) (string, error)

	// Transfer submits a memo-less transfer and returns the transaction hash.
	// Not used by the settlement flow but part of the same capability surface.
	Transfer(ctx context.Context, to string, amount *big.Int) (string, error)
}
