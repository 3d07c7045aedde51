package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenBalance queries owner's balance of token via the token contract and
// reports the gas the query consumed.
func (b *Backend) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, uint64, error) {
	data, err := packBalanceOf(owner)
	if err != nil {
		return nil, 0, err
	}

	result, err := b.Call(ctx, common.Address{}, token, nil, data)
	if err != nil {
		return nil, 0, err
	}
	if !result.Success {
		return nil, result.GasUsed, fmt.Errorf("balanceOf reverted on token %s", token)
	}

	balance, err := unpackBalance(result.ReturnData)
	if err != nil {
		return nil, result.GasUsed, fmt.Errorf("decode balanceOf return from token %s: %w", token, err)
	}

	return balance, result.GasUsed, nil
}

// NativeBalance reads owner's native currency balance from the state.
func (b *Backend) NativeBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return b.state.GetBalance(owner).ToBig(), nil
}
