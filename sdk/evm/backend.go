package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/tracing"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/quotelab/swapsim/sdk"
	"github.com/quotelab/swapsim/types"
)

// DefaultCallGasLimit caps the gas handed to each simulated call.
const DefaultCallGasLimit = uint64(50_000_000)

var (
	_ sdk.Inspector = (*Backend)(nil)
	_ sdk.Executor  = (*Backend)(nil)
	_ sdk.Mocker    = (*Backend)(nil)
)

// Backend is an in-memory EVM execution context backing one simulation run.
// All calls share a single mutable state; gas is metered per call. It is not
// safe for concurrent use and is meant to be discarded after one run.
type Backend struct {
	state       *state.StateDB
	chainConfig *params.ChainConfig
	gasLimit    uint64
	blockNumber *big.Int
	blockTime   uint64
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithCallGasLimit overrides the per-call gas cap.
func WithCallGasLimit(limit uint64) BackendOption {
	return func(b *Backend) {
		b.gasLimit = limit
	}
}

// WithBlockNumber sets the block number calls observe.
func WithBlockNumber(number uint64) BackendOption {
	return func(b *Backend) {
		b.blockNumber = new(big.Int).SetUint64(number)
	}
}

// WithBlockTime sets the block timestamp calls observe.
func WithBlockTime(time uint64) BackendOption {
	return func(b *Backend) {
		b.blockTime = time
	}
}

// NewBackend creates a Backend over a fresh in-memory state.
func NewBackend(opts ...BackendOption) (*Backend, error) {
	statedb, err := state.New(gethtypes.EmptyRootHash, state.NewDatabaseForTesting())
	if err != nil {
		return nil, fmt.Errorf("create state: %w", err)
	}

	b := &Backend{
		state:       statedb,
		chainConfig: params.MergedTestChainConfig,
		gasLimit:    DefaultCallGasLimit,
		blockNumber: big.NewInt(1),
		blockTime:   1,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// SetNativeBalance seeds addr with a native currency balance.
func (b *Backend) SetNativeBalance(addr common.Address, amount *big.Int) error {
	value, overflow := uint256.FromBig(amount)
	if overflow {
		return fmt.Errorf("balance %s overflows uint256", amount)
	}
	b.state.SetBalance(addr, value, tracing.BalanceChangeUnspecified)

	return nil
}

// SetCode installs runtime bytecode at addr.
func (b *Backend) SetCode(addr common.Address, code []byte) {
	b.state.SetCode(addr, code)
}

// Call executes data against to, impersonating from. Contract-level reverts
// are reported in the CallResult rather than as errors.
func (b *Backend) Call(ctx context.Context, from, to common.Address, value *big.Int, data []byte) (types.CallResult, error) {
	if err := ctx.Err(); err != nil {
		return types.CallResult{}, err
	}

	callValue := new(uint256.Int)
	if value != nil {
		v, overflow := uint256.FromBig(value)
		if overflow {
			return types.CallResult{}, fmt.Errorf("call value %s overflows uint256", value)
		}
		callValue = v
	}

	ret, leftOverGas, err := b.evm().Call(from, to, data, b.gasLimit, callValue)
	result := types.CallResult{
		GasUsed:    b.gasLimit - leftOverGas,
		ReturnData: ret,
	}
	if err != nil {
		// Reverts and other EVM-level aborts surface through the result so
		// the caller can decide whether they are fatal.
		return result, nil
	}
	result.Success = true

	return result, nil
}

// evm builds a fresh EVM over the shared state for one call.
func (b *Backend) evm() *vm.EVM {
	blockCtx := vm.BlockContext{
		CanTransfer: core.CanTransfer,
		Transfer:    core.Transfer,
		GetHash:     func(uint64) common.Hash { return common.Hash{} },
		Coinbase:    common.Address{},
		BlockNumber: b.blockNumber,
		Time:        b.blockTime,
		Difficulty:  common.Big0,
		BaseFee:     new(big.Int),
		BlobBaseFee: new(big.Int),
		GasLimit:    b.gasLimit,
		Random:      &common.Hash{},
	}

	return vm.NewEVM(blockCtx, b.state, b.chainConfig, vm.Config{})
}
