package swapsim

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// executeSettlement runs the opaque settlement payload and returns the gas
// it consumed net of the overhead accrued by gas-counted balance reads.
//
// A settlement failure propagates verbatim, revert payload included: it is a
// price/feasibility signal for the quoting client, so there is no retry and
// no interpretation here.
func (h *Harness) executeSettlement(ctx context.Context, settlement common.Address, payload []byte) (uint64, error) {
	result, err := h.executor.Call(ctx, h.solver, settlement, nil, payload)
	if err != nil {
		return 0, err
	}
	if !result.Success {
		return 0, NewSettlementFailureError(settlement, result.ReturnData)
	}

	// Overhead never exceeds the measured gas when the recorder is used as
	// designed; clamp rather than underflow if a caller miscounted.
	if h.overhead > result.GasUsed {
		return 0, nil
	}

	return result.GasUsed - h.overhead, nil
}
