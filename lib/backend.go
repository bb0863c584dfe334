package lib

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// BackendProvider performs operations against a go-ethereum contract backend,
// typically an *ethclient.Client.
type BackendProvider struct {
	backend bind.ContractBackend
	client  *ethclient.Client

	network    NetworkID
	hasNetwork bool

	logger *zap.Logger
}

type ProviderOption func(*BackendProvider)

// WithLogger sets the logger delegated operations are reported to.
func WithLogger(logger *zap.Logger) ProviderOption {
	return func(p *BackendProvider) {
		p.logger = logger
	}
}

// WithNetwork declares the network the backend is connected to.
func WithNetwork(id NetworkID) ProviderOption {
	return func(p *BackendProvider) {
		p.network = id
		p.hasNetwork = true
	}
}

func NewBackendProvider(backend bind.ContractBackend, opts ...ProviderOption) *BackendProvider {
	p := &BackendProvider{
		backend: backend,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dial connects to a node and records its chain id as the connected network.
func Dial(ctx context.Context, rawurl string, opts ...ProviderOption) (*BackendProvider, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rawurl, err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("querying chain id: %w", err)
	}

	opts = append([]ProviderOption{WithNetwork(NetworkID(chainID.Uint64()))}, opts...)
	p := NewBackendProvider(client, opts...)
	p.client = client
	p.logger.Info("connected", zap.String("url", rawurl), zap.Uint64("network", chainID.Uint64()))
	return p, nil
}

// Close releases the connection opened by Dial.
func (p *BackendProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

func (p *BackendProvider) CurrentNetwork() (NetworkID, bool) {
	return p.network, p.hasNetwork
}

func (p *BackendProvider) checkNetwork(t Target) error {
	if p.hasNetwork && t.Network != p.network {
		return fmt.Errorf("%w: connected to %d, call targets %d", ErrNetworkMismatch, p.network, t.Network)
	}
	return nil
}

func (p *BackendProvider) bound(t Target) (*bind.BoundContract, error) {
	if err := p.checkNetwork(t); err != nil {
		return nil, err
	}
	parsed, err := t.Contract.ABI()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(t.Address, *parsed, p.backend, p.backend, p.backend), nil
}

func (p *BackendProvider) Read(ctx context.Context, req *ReadRequest) ([]interface{}, error) {
	bc, err := p.bound(req.Target)
	if err != nil {
		return nil, err
	}

	opts := new(bind.CallOpts)
	if req.Opts != nil {
		*opts = *req.Opts
	}
	if opts.Context == nil {
		opts.Context = ctx
	}

	p.logger.Debug("read",
		zap.String("contract", req.Contract.Name()),
		zap.String("member", req.Member),
		zap.Uint64("network", uint64(req.Network)),
		zap.Stringer("address", req.Address))

	var out []interface{}
	if err := bc.Call(opts, &out, req.Member, req.Args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *BackendProvider) Prepare(ctx context.Context, req *PreparedRequest) error {
	if err := p.checkNetwork(req.Target); err != nil {
		return err
	}
	to := req.Address
	gas, err := p.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  req.From,
		To:    &to,
		Value: req.Value,
		Data:  req.Data,
	})
	if err != nil {
		return err
	}
	if req.Gas == 0 {
		req.Gas = gas
	}

	p.logger.Debug("prepared",
		zap.String("contract", req.Contract.Name()),
		zap.String("member", req.Member),
		zap.Uint64("network", uint64(req.Network)),
		zap.Uint64("gas", req.Gas))
	return nil
}

func (p *BackendProvider) Write(ctx context.Context, req *WriteRequest) (*types.Transaction, error) {
	if req.Opts == nil || req.Opts.Signer == nil {
		return nil, ErrNoSigner
	}
	bc, err := p.bound(req.Target)
	if err != nil {
		return nil, err
	}

	opts := *req.Opts
	if opts.Context == nil {
		opts.Context = ctx
	}

	var tx *types.Transaction
	if req.Prepared != nil {
		if opts.GasLimit == 0 {
			opts.GasLimit = req.Prepared.Gas
		}
		if opts.Value == nil {
			opts.Value = req.Prepared.Value
		}
		tx, err = bc.RawTransact(&opts, req.Prepared.Data)
	} else {
		tx, err = bc.Transact(&opts, req.Member, req.Args...)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("submitted",
		zap.String("contract", req.Contract.Name()),
		zap.String("member", req.Member),
		zap.Uint64("network", uint64(req.Network)),
		zap.Stringer("tx", tx.Hash()))
	return tx, nil
}

func (p *BackendProvider) Subscribe(ctx context.Context, req *SubscribeRequest) (event.Subscription, error) {
	if err := p.checkNetwork(req.Target); err != nil {
		return nil, err
	}
	parsed, err := req.Contract.ABI()
	if err != nil {
		return nil, err
	}
	ev, ok := parsed.Events[req.Member]
	if !ok {
		return nil, fmt.Errorf("%w: event %s", ErrUnknownMember, req.Member)
	}

	topics, err := abi.MakeTopics(req.Topics...)
	if err != nil {
		return nil, fmt.Errorf("building topic filter: %w", err)
	}
	if !ev.Anonymous {
		topics = append([][]common.Hash{{ev.ID}}, topics...)
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{req.Address},
		Topics:    topics,
	}
	subCtx := ctx
	if req.Opts != nil {
		if req.Opts.Start != nil {
			query.FromBlock = new(big.Int).SetUint64(*req.Opts.Start)
		}
		if req.Opts.Context != nil {
			subCtx = req.Opts.Context
		}
	}

	logs := make(chan types.Log, 128)
	sub, err := p.backend.SubscribeFilterLogs(subCtx, query, logs)
	if err != nil {
		return nil, err
	}

	logger := p.logger.With(
		zap.String("contract", req.Contract.Name()),
		zap.String("event", req.Member),
		zap.Uint64("network", uint64(req.Network)))
	logger.Debug("subscribed")

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				if err := req.Handler(log); err != nil {
					logger.Warn("subscription handler failed", zap.Error(err))
					return err
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}
