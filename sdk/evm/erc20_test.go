package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotelab/swapsim/types"
)

func TestPackBalanceOf(t *testing.T) {
	t.Parallel()

	data, err := packBalanceOf(common.HexToAddress("0x1"))
	require.NoError(t, err)
	assert.Len(t, data, 4+32)
	// balanceOf(address) selector
	assert.Equal(t, []byte{0x70, 0xa0, 0x82, 0x31}, data[:4])
}

func TestUnpackBalance(t *testing.T) {
	t.Parallel()

	var word [32]byte
	big.NewInt(42).FillBytes(word[:])

	balance, err := unpackBalance(word[:])
	require.NoError(t, err)
	assert.Zero(t, balance.Cmp(big.NewInt(42)))

	_, err = unpackBalance([]byte{0x01})
	require.Error(t, err, "short return data must not decode")
}

func TestTransferSucceeded(t *testing.T) {
	t.Parallel()

	trueWord := make([]byte, 32)
	trueWord[31] = 1

	tests := []struct {
		name   string
		result types.CallResult
		want   bool
	}{
		{name: "reverted", result: types.CallResult{Success: false}, want: false},
		{name: "no return data", result: types.CallResult{Success: true}, want: true},
		{name: "abi true", result: types.CallResult{Success: true, ReturnData: trueWord}, want: true},
		{name: "abi false", result: types.CallResult{Success: true, ReturnData: make([]byte, 32)}, want: false},
		{name: "garbage return data", result: types.CallResult{Success: true, ReturnData: []byte{0x01, 0x02}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, transferSucceeded(tt.result))
		})
	}
}
