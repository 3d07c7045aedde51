package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/quotelab/swapsim/types"
)

// Inspector reads balances from the simulated chain state.
type Inspector interface {
	// TokenBalance reports owner's balance of token, together with the gas
	// consumed by the query itself.
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, uint64, error)

	// NativeBalance reports owner's native currency balance.
	NativeBalance(ctx context.Context, owner common.Address) (*big.Int, error)
}

// Executor runs low-level calls inside the simulated chain context.
type Executor interface {
	// Call executes data against to, impersonating from. A contract-level
	// revert is reported in the CallResult, not as an error.
	Call(ctx context.Context, from, to common.Address, value *big.Int, data []byte) (types.CallResult, error)

	// TryTransfer attempts a token transfer from from to to and reports
	// whether it succeeded instead of failing the simulation.
	TryTransfer(ctx context.Context, token, from, to common.Address, amount *big.Int) (bool, error)
}

// Mocker fabricates a trader's funding and approval state, executed under
// the trader's own identity.
type Mocker interface {
	PrepareSwap(ctx context.Context, settlement, trader, sellToken common.Address, sellAmount *big.Int, nativeToken common.Address) error
}
