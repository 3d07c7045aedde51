package evm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/quotelab/swapsim/types"
)

// erc20ABIJSON covers the token surface the simulation touches: balance
// queries, transfers, approvals, and the wrapped-native deposit.
const erc20ABIJSON = `[
	{"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"deposit","outputs":[],"stateMutability":"payable","type":"function"}
]`

var erc20ABI abi.ABI

// maxUint256 is the conventional unlimited approval amount.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func init() {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic(err)
	}
	erc20ABI = parsed
}

func packBalanceOf(owner common.Address) ([]byte, error) {
	return erc20ABI.Pack("balanceOf", owner)
}

func packTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	return erc20ABI.Pack("transfer", to, amount)
}

func packApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	return erc20ABI.Pack("approve", spender, amount)
}

func packDeposit() ([]byte, error) {
	return erc20ABI.Pack("deposit")
}

func unpackBalance(data []byte) (*big.Int, error) {
	values, err := erc20ABI.Unpack("balanceOf", data)
	if err != nil {
		return nil, err
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf return type %T", values[0])
	}

	return balance, nil
}

// transferSucceeded interprets a transfer call outcome. Tokens that return
// nothing on success are treated the same as tokens returning ABI true.
func transferSucceeded(result types.CallResult) bool {
	if !result.Success {
		return false
	}
	if len(result.ReturnData) == 0 {
		return true
	}

	values, err := erc20ABI.Unpack("transfer", result.ReturnData)
	if err != nil {
		return false
	}
	ok, isBool := values[0].(bool)

	return isBool && ok
}
