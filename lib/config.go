package lib

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Config holds the per-call overrides shared by every capability.
type Config struct {
	Network *NetworkID      // Explicit network, wins over the connected and default networks
	Address *common.Address // Skips the deployment table when set
}

type ReadConfig struct {
	Config
	Opts *bind.CallOpts
}

type WriteConfig struct {
	Config
	Opts *bind.TransactOpts // Must carry a signer for submission
}

type SubscribeConfig struct {
	Config
	Opts *bind.WatchOpts
	// Topics filters indexed parameters positionally, as bind.BoundContract.WatchLogs does.
	Topics [][]interface{}
}
