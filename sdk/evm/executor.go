package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TryTransfer attempts a token transfer impersonating from, reporting
// success or failure instead of aborting the simulation. A token that
// reverts, returns ABI false, or cannot be called at all reports false.
func (b *Backend) TryTransfer(ctx context.Context, token, from, to common.Address, amount *big.Int) (bool, error) {
	data, err := packTransfer(to, amount)
	if err != nil {
		return false, err
	}

	result, err := b.Call(ctx, from, token, nil, data)
	if err != nil {
		return false, err
	}

	return transferSucceeded(result), nil
}
