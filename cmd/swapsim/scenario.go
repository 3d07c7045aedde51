package swapsim

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"

	"github.com/quotelab/swapsim/sdk/evm"
	"github.com/quotelab/swapsim/types"
)

// scenarioAccount seeds one account of the simulated chain state.
type scenarioAccount struct {
	Address common.Address `json:"address" validate:"required"`
	// Balance is a decimal native currency amount.
	Balance string `json:"balance,omitempty"`
	// Code is the runtime bytecode to install at the address.
	Code hexutil.Bytes `json:"code,omitempty"`
}

// scenario is the file format consumed by the simulate command: the chain
// state to fabricate and the swap request to run against it.
type scenario struct {
	Solver   common.Address    `json:"solver" validate:"required"`
	GasLimit int64             `json:"gasLimit,omitempty"`
	Accounts []scenarioAccount `json:"accounts"`
	Request  types.SwapRequest `json:"request"`
}

func loadScenario(path string) (*scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out scenario
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}

	if err := validator.New().Struct(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

// seed applies the scenario's accounts to the backend.
func (s *scenario) seed(backend *evm.Backend) error {
	for _, account := range s.Accounts {
		if account.Balance != "" {
			balance, ok := new(big.Int).SetString(account.Balance, 10)
			if !ok {
				return fmt.Errorf("invalid balance %q for account %s", account.Balance, account.Address)
			}
			if err := backend.SetNativeBalance(account.Address, balance); err != nil {
				return err
			}
		}
		if len(account.Code) > 0 {
			backend.SetCode(account.Address, account.Code)
		}
	}

	return nil
}
