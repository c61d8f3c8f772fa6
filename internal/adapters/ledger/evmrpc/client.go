// Package evmrpc implements the token ledger client against an EVM JSON-RPC
// node. Reads go through eth_call; transfers are submitted with
// eth_sendTransaction so the node's wallet provider signs on the account's
// behalf, keys never touch this process.
package evmrpc

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
)

const tokenABIJSON = `[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"name":"transfer","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"transferWithMemo","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]}
]`

// callMsg mirrors the eth_call / eth_sendTransaction parameter object.
type callMsg struct {
	From *common.Address `json:"from,omitempty"`
	To   *common.Address `json:"to"`
	Data hexutil.Bytes   `json:"data"`
}

// Client talks to one token contract on behalf of one account.
type Client struct {
	rpc      *rpc.Client
	tokenABI abi.ABI
	token    common.Address
	account  common.Address
}

var _ ledger.TokenLedgerClient = (*Client)(nil)

// Dial connects to the JSON-RPC endpoint and binds the client to the token
// contract and active account addresses.
func Dial(ctx context.Context, rawURL string, tokenAddress string, accountAddress string) (*Client, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, fmt.Errorf("token address %q: %w", tokenAddress, apperrors.ErrValidation)
	}
	if !common.IsHexAddress(accountAddress) {
		return nil, fmt.Errorf("account address %q: %w", accountAddress, apperrors.ErrValidation)
	}

	parsed, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ABI: %w", err)
	}

	rpcClient, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger rpc %s: %w", rawURL, err)
	}

	return &Client{
		rpc:      rpcClient,
		tokenABI: parsed,
		token:    common.HexToAddress(tokenAddress),
		account:  common.HexToAddress(accountAddress),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("account address %q: %w", account, apperrors.ErrValidation)
	}
	data, err := c.tokenABI.Pack("balanceOf", common.HexToAddress(account))
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf: %w", err)
	}

	raw, err := c.call(ctx, data)
	if err != nil {
		return nil, err
	}

	values, err := c.tokenABI.Unpack("balanceOf", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode balanceOf result: %v", apperrors.ErrLedger, err)
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected balanceOf result type %T", apperrors.ErrLedger, values[0])
	}
	return balance, nil
}

func (c *Client) Decimals(ctx context.Context) (uint8, error) {
	data, err := c.tokenABI.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("failed to pack decimals: %w", err)
	}

	raw, err := c.call(ctx, data)
	if err != nil {
		return 0, err
	}

	values, err := c.tokenABI.Unpack("decimals", raw)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to decode decimals result: %v", apperrors.ErrLedger, err)
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected decimals result type %T", apperrors.ErrLedger, values[0])
	}
	return decimals, nil
}

func (c *Client) Transfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("destination address %q: %w", to, apperrors.ErrValidation)
	}
	data, err := c.tokenABI.Pack("transfer", common.HexToAddress(to), amount)
	if err != nil {
		return "", fmt.Errorf("failed to pack transfer: %w", err)
	}
	return c.send(ctx, data)
}

func (c *Client) TransferWithMemo(ctx context.Context, to string, amount *big.Int, memo [ledger.MemoLength]byte) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("destination address %q: %w", to, apperrors.ErrValidation)
	}
	data, err := c.tokenABI.Pack("transferWithMemo", common.HexToAddress(to), amount, memo)
	if err != nil {
		return "", fmt.Errorf("failed to pack transferWithMemo: %w", err)
	}
	return c.send(ctx, data)
}

func (c *Client) call(ctx context.Context, data []byte) ([]byte, error) {
	var result hexutil.Bytes
	msg := callMsg{To: &c.token, Data: data}
	if err := c.rpc.CallContext(ctx, &result, "eth_call", msg, "latest"); err != nil {
		return nil, fmt.Errorf("%w: eth_call failed: %v", apperrors.ErrLedger, err)
	}
	return result, nil
}

func (c *Client) send(ctx context.Context, data []byte) (string, error) {
	var txHash common.Hash
	msg := callMsg{From: &c.account, To: &c.token, Data: data}
	if err := c.rpc.CallContext(ctx, &txHash, "eth_sendTransaction", msg); err != nil {
		return "", fmt.Errorf("%w: eth_sendTransaction failed: %v", apperrors.ErrLedger, err)
	}
	return txHash.Hex(), nil
}
