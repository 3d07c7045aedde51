package types

// CallResult is the outcome of a single low-level call executed inside the
// simulated chain context.
//
// A contract-level revert is reported as Success == false with the revert
// data in ReturnData; Go errors are reserved for failures of the simulation
// substrate itself.
type CallResult struct {
	Success    bool
	GasUsed    uint64
	ReturnData []byte
}
