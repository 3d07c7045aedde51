package swapsim

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/quotelab/swapsim/types"
)

// fakeTransfer records one TryTransfer attempt.
type fakeTransfer struct {
	token  common.Address
	from   common.Address
	to     common.Address
	amount *big.Int
}

// fakeCall records one low-level call.
type fakeCall struct {
	from  common.Address
	to    common.Address
	value *big.Int
	data  []byte
}

// fakeChain is a fake implementation of the sdk.Inspector, sdk.Executor and
// sdk.Mocker interfaces, holding token and native balances in maps. Calls
// with payload data are treated as settlement executions and answered with
// the scripted result; empty-data calls model the warm-up probe.
type fakeChain struct {
	tokenBalances   map[common.Address]map[common.Address]*big.Int
	nativeBalances  map[common.Address]*big.Int
	balanceQueryGas uint64
	balanceErr      error

	transferErr error
	transfers   []fakeTransfer

	prepare  func(ctx context.Context) error
	prepared int

	settlementResult types.CallResult
	settlementErr    error
	onSettlement     func()

	calls []fakeCall
}

// newFakeChain returns a fakeChain whose settlement call succeeds with the
// given gas.
func newFakeChain(settlementGas uint64) *fakeChain {
	return &fakeChain{
		tokenBalances:    make(map[common.Address]map[common.Address]*big.Int),
		nativeBalances:   make(map[common.Address]*big.Int),
		balanceQueryGas:  1_000,
		settlementResult: types.CallResult{Success: true, GasUsed: settlementGas},
	}
}

func (f *fakeChain) setTokenBalance(token, owner common.Address, amount *big.Int) {
	if f.tokenBalances[token] == nil {
		f.tokenBalances[token] = make(map[common.Address]*big.Int)
	}
	f.tokenBalances[token][owner] = new(big.Int).Set(amount)
}

func (f *fakeChain) tokenBalance(token, owner common.Address) *big.Int {
	if balance, ok := f.tokenBalances[token][owner]; ok {
		return balance
	}

	return big.NewInt(0)
}

func (f *fakeChain) TokenBalance(_ context.Context, token, owner common.Address) (*big.Int, uint64, error) {
	if f.balanceErr != nil {
		return nil, 0, f.balanceErr
	}

	return new(big.Int).Set(f.tokenBalance(token, owner)), f.balanceQueryGas, nil
}

func (f *fakeChain) NativeBalance(_ context.Context, owner common.Address) (*big.Int, error) {
	if balance, ok := f.nativeBalances[owner]; ok {
		return new(big.Int).Set(balance), nil
	}

	return big.NewInt(0), nil
}

func (f *fakeChain) Call(_ context.Context, from, to common.Address, value *big.Int, data []byte) (types.CallResult, error) {
	f.calls = append(f.calls, fakeCall{from: from, to: to, value: value, data: data})
	if len(data) == 0 {
		// Warm-up probe.
		return types.CallResult{Success: true}, nil
	}

	if f.onSettlement != nil {
		f.onSettlement()
	}

	return f.settlementResult, f.settlementErr
}

// TryTransfer moves tokens between the fake balances, failing like a real
// token when the sender cannot cover the amount.
func (f *fakeChain) TryTransfer(_ context.Context, token, from, to common.Address, amount *big.Int) (bool, error) {
	f.transfers = append(f.transfers, fakeTransfer{token: token, from: from, to: to, amount: new(big.Int).Set(amount)})
	if f.transferErr != nil {
		return false, f.transferErr
	}

	fromBalance := f.tokenBalance(token, from)
	if fromBalance.Cmp(amount) < 0 {
		return false, nil
	}

	f.setTokenBalance(token, from, new(big.Int).Sub(fromBalance, amount))
	f.setTokenBalance(token, to, new(big.Int).Add(f.tokenBalance(token, to), amount))

	return true, nil
}

func (f *fakeChain) PrepareSwap(ctx context.Context, _, _, _ common.Address, _ *big.Int, _ common.Address) error {
	f.prepared++
	if f.prepare != nil {
		return f.prepare(ctx)
	}

	return nil
}

// settlementCalls returns the calls carrying a payload, i.e. everything that
// was not a warm-up probe.
func (f *fakeChain) settlementCalls() []fakeCall {
	var out []fakeCall
	for _, c := range f.calls {
		if len(c.data) > 0 {
			out = append(out, c)
		}
	}

	return out
}
