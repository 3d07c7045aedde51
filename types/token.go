package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"github.com/ethereum/go-ethereum/common"
)

// NativeToken is the reserved token identifier meaning "native chain
// currency". Balance reads for it go through the account balance rather
// than a token contract query.
var NativeToken = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

// IsNative reports whether token is the native currency sentinel.
func IsNative(token common.Address) bool {
	return token == NativeToken
}
