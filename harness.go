package swapsim

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/quotelab/swapsim/sdk"
	"github.com/quotelab/swapsim/types"
)

// Capability authorizes calls into a harness's privileged entry points. The
// only way to obtain a valid one is from New, which keeps Swap reachable
// solely by the driver that constructed the harness.
type Capability struct {
	h *Harness
}

// Harness orchestrates one settlement simulation: optional precondition
// mocking, a receiver warm-up probe, balance snapshots around a gas-isolated
// execution of an opaque settlement call.
//
// A harness instance serves one simulation at a time; instrumentation state
// is reset at the start of every run.
type Harness struct {
	inspector sdk.Inspector
	executor  sdk.Executor
	mocker    sdk.Mocker

	// solver is the account the harness controls. It fronts liquidity for
	// underfunded traders and is the caller of the settlement contract.
	solver common.Address

	overhead uint64
	balances []*big.Int
}

// New creates a harness and mints the single driver capability that can
// invoke it.
func New(inspector sdk.Inspector, executor sdk.Executor, mocker sdk.Mocker, solver common.Address) (*Harness, Capability) {
	h := &Harness{
		inspector: inspector,
		executor:  executor,
		mocker:    mocker,
		solver:    solver,
	}

	return h, Capability{h: h}
}

func (h *Harness) authorized(capability Capability) bool {
	return h != nil && capability.h == h
}

// Swap simulates the settlement described by req and returns the gas it
// consumed, net of instrumentation overhead, together with the balance
// snapshots taken immediately before and after execution.
func (h *Harness) Swap(ctx context.Context, capability Capability, req *types.SwapRequest) (*types.SwapResult, error) {
	if !h.authorized(capability) {
		return nil, &UnauthorizedError{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fresh instrumentation state so a reused instance cannot leak overhead
	// or snapshots across runs.
	h.overhead = 0
	h.balances = nil

	if req.MockPreconditions {
		if err := h.mockPreconditions(ctx, req); err != nil {
			return nil, err
		}
	}

	h.warmUpReceiver(ctx, req.Receiver)

	for _, token := range req.Tokens {
		if err := h.StoreBalance(ctx, capability, token, req.SettlementContract, false); err != nil {
			return nil, err
		}
	}

	gasUsed, err := h.executeSettlement(ctx, req.SettlementContract, req.SettlementCall)
	if err != nil {
		return nil, err
	}

	for _, token := range req.Tokens {
		if err := h.StoreBalance(ctx, capability, token, req.SettlementContract, false); err != nil {
			return nil, err
		}
	}

	balances := make([]*big.Int, len(h.balances))
	copy(balances, h.balances)

	return &types.SwapResult{GasUsed: gasUsed, Balances: balances}, nil
}

// mockPreconditions fabricates the trader's funding and approval state, then
// verifies the trader can actually cover the sell amount. A shortfall is
// fronted best-effort from the solver's own holdings: solvers are pre-funded
// via state overrides and willing to front liquidity purely so quoting can
// succeed before the real trader has acted.
func (h *Harness) mockPreconditions(ctx context.Context, req *types.SwapRequest) error {
	if err := h.mocker.PrepareSwap(ctx, req.SettlementContract, req.Trader, req.SellToken, req.SellAmount, req.NativeToken); err != nil {
		return err
	}

	balance, _, err := h.inspector.TokenBalance(ctx, req.SellToken, req.Trader)
	if err != nil {
		return err
	}
	if balance.Cmp(req.SellAmount) >= 0 {
		return nil
	}

	shortfall := new(big.Int).Sub(req.SellAmount, balance)
	ok, err := h.executor.TryTransfer(ctx, req.SellToken, h.solver, req.Trader, shortfall)
	if err != nil {
		return err
	}
	if !ok {
		sdk.LoggerFrom(ctx).Infof("solver top-up of %s %s to trader %s failed", shortfall, req.SellToken, req.Trader)
	}

	balance, _, err = h.inspector.TokenBalance(ctx, req.SellToken, req.Trader)
	if err != nil {
		return err
	}
	if balance.Cmp(req.SellAmount) < 0 {
		return NewInsufficientTraderBalanceError(req.Trader, req.SellToken, balance, req.SellAmount)
	}

	return nil
}

// warmUpReceiver pays the receiver's one-time account initialization cost up
// front so it does not distort the measured settlement gas. The outcome is
// ignored: failure either means the cost was already paid, or that the
// settlement call will fail for the same reason and surface it there.
func (h *Harness) warmUpReceiver(ctx context.Context, receiver common.Address) {
	_, _ = h.executor.Call(ctx, h.solver, receiver, big.NewInt(0), nil)
}
