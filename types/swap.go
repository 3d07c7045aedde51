package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

// SwapRequest carries all inputs for one settlement simulation.
//
// SettlementCall is a fully-formed call into the settlement contract; the
// harness never inspects its contents, only its outcome and gas cost.
type SwapRequest struct {
	// SettlementContract is the contract the opaque settlement call targets,
	// and the owner whose token balances are snapshotted.
	SettlementContract common.Address `json:"settlementContract" validate:"required"`

	// Trader is the account the settlement pulls sell tokens from.
	Trader common.Address `json:"trader" validate:"required"`

	// SellToken and SellAmount describe the funding the trader must hold
	// before the settlement can execute.
	SellToken  common.Address `json:"sellToken" validate:"required"`
	SellAmount *big.Int       `json:"sellAmount" validate:"required"`

	// NativeToken is the wrapped form of the native currency, used by the
	// precondition mocker to cover a sell-token shortfall by wrapping.
	NativeToken common.Address `json:"nativeToken"`

	// Tokens is the ordered set of tokens to snapshot before and after the
	// settlement executes.
	Tokens []common.Address `json:"tokens"`

	// Receiver is the address the settlement pays out to. It is probed with
	// a zero-value transfer before execution so one-time account
	// initialization costs do not show up in the measured gas.
	Receiver common.Address `json:"receiver"`

	// SettlementCall is the opaque settlement payload.
	SettlementCall hexutil.Bytes `json:"settlementCall" validate:"required"`

	// MockPreconditions fabricates the trader's funding and approval state
	// before executing, for quoting against traders that have not acted yet.
	MockPreconditions bool `json:"mockPreconditions"`
}

// Validate runs tag-based validation on the request.
func (r *SwapRequest) Validate() error {
	return validator.New().Struct(r)
}

// SwapResult is the outcome of one settlement simulation.
type SwapResult struct {
	// GasUsed is the gas consumed by the settlement call, net of
	// instrumentation overhead.
	GasUsed uint64 `json:"gasUsed"`

	// Balances holds one entry per balance observation, in call order: first
	// every token in request order before the settlement, then the same
	// tokens in the same order after.
	Balances []*big.Int `json:"balances"`
}
