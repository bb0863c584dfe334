package lib

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Provider performs the remote operations generated bindings delegate to.
// Retries, timeouts and cancellation are the provider's business.
type Provider interface {
	NetworkSource

	// Read invokes a read-only function and returns its decoded outputs in order.
	Read(ctx context.Context, req *ReadRequest) ([]interface{}, error)
	// Prepare validates a state-changing call without submitting it, and may fill in Gas.
	Prepare(ctx context.Context, req *PreparedRequest) error
	// Write submits a state-changing transaction.
	Write(ctx context.Context, req *WriteRequest) (*types.Transaction, error)
	// Subscribe registers req.Handler for every matching log.
	Subscribe(ctx context.Context, req *SubscribeRequest) (event.Subscription, error)
}

type ReadRequest struct {
	Target
	Member string
	Args   []interface{}
	Opts   *bind.CallOpts
}

// PreparedRequest is a state-changing call that has been encoded and validated,
// ready to be submitted later.
type PreparedRequest struct {
	Target
	Member string
	Args   []interface{}
	Data   []byte
	From   common.Address
	Value  *big.Int
	Gas    uint64
}

type WriteRequest struct {
	Target
	Member string
	Args   []interface{}
	Opts   *bind.TransactOpts

	// Prepared is set when submitting a previously prepared request; Args is then empty.
	Prepared *PreparedRequest
}

type SubscribeRequest struct {
	Target
	Member string
	Topics [][]interface{}
	Opts   *bind.WatchOpts

	// Handler receives every matching log. Returning an error ends the subscription.
	Handler func(types.Log) error
}
