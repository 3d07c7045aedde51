package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PrepareSwap fabricates the funding and approval state a real trader would
// have set up before the settlement executes. Every call runs under the
// trader's own identity.
//
// When the sell token is the wrapped form of the native currency and the
// trader's token balance is short, the shortfall is wrapped from the
// trader's native holdings. The settlement contract then receives an
// unlimited sell-token allowance so it can pull funds.
func (b *Backend) PrepareSwap(ctx context.Context, settlement, trader, sellToken common.Address, sellAmount *big.Int, nativeToken common.Address) error {
	if sellToken == nativeToken {
		balance, _, err := b.TokenBalance(ctx, sellToken, trader)
		if err != nil {
			return err
		}
		if balance.Cmp(sellAmount) < 0 {
			shortfall := new(big.Int).Sub(sellAmount, balance)
			if err := b.wrapNative(ctx, trader, sellToken, shortfall); err != nil {
				return err
			}
		}
	}

	data, err := packApprove(settlement, maxUint256)
	if err != nil {
		return err
	}
	result, err := b.Call(ctx, trader, sellToken, nil, data)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("approve reverted on token %s", sellToken)
	}

	return nil
}

// wrapNative deposits amount of the trader's native balance into the
// wrapped-native token.
func (b *Backend) wrapNative(ctx context.Context, trader, wrapped common.Address, amount *big.Int) error {
	data, err := packDeposit()
	if err != nil {
		return err
	}

	result, err := b.Call(ctx, trader, wrapped, amount, data)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("wrapping %s native currency for trader %s failed", amount, trader)
	}

	return nil
}
