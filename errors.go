package swapsim

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UnauthorizedError is returned when a privileged entry point is invoked
// without the driver capability minted for the harness instance.
type UnauthorizedError struct{}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	return "caller does not hold the driver capability for this harness"
}

// InsufficientTraderBalanceError is returned when the trader still lacks
// sufficient sell-token balance after precondition mocking and the
// best-effort solver top-up.
type InsufficientTraderBalanceError struct {
	Trader    common.Address
	SellToken common.Address
	Have      *big.Int
	Want      *big.Int
}

// NewInsufficientTraderBalanceError creates a new InsufficientTraderBalanceError.
func NewInsufficientTraderBalanceError(trader, sellToken common.Address, have, want *big.Int) *InsufficientTraderBalanceError {
	return &InsufficientTraderBalanceError{Trader: trader, SellToken: sellToken, Have: have, Want: want}
}

func (e *InsufficientTraderBalanceError) Error() string {
	return fmt.Sprintf("trader %s holds %s of sell token %s, needs %s", e.Trader, e.Have, e.SellToken, e.Want)
}

// SettlementFailureError is returned when the settlement call itself fails.
// The revert payload is carried verbatim: it is the primary feasibility
// signal for the quoting client, not an internal error to mask.
type SettlementFailureError struct {
	Settlement common.Address
	ReturnData []byte
}

// NewSettlementFailureError creates a new SettlementFailureError.
func NewSettlementFailureError(settlement common.Address, returnData []byte) *SettlementFailureError {
	return &SettlementFailureError{Settlement: settlement, ReturnData: returnData}
}

func (e *SettlementFailureError) Error() string {
	if len(e.ReturnData) == 0 {
		return fmt.Sprintf("settlement call to %s failed with no return data", e.Settlement)
	}

	return fmt.Sprintf("settlement call to %s failed: %s", e.Settlement, hexutil.Encode(e.ReturnData))
}
