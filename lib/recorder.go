package lib

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

type Capability string

const (
	CapabilityRead      Capability = "read"
	CapabilityPrepare   Capability = "prepare"
	CapabilityWrite     Capability = "write"
	CapabilitySubscribe Capability = "subscribe"
)

// Call is one delegated operation captured by a Recorder.
type Call struct {
	Capability Capability
	Contract   string
	Network    NetworkID
	Address    common.Address
	Member     string
	Args       []interface{}
	CallData   []byte // Encoded calldata, empty for subscriptions
	Prepared   bool   // A write that submitted a prepared request
}

// A Recorder lets you exercise bindings without a live backend: it captures
// every delegated operation, answers reads from canned results, and hands out
// unsigned transactions for writes. Logs passed to Emit reach every live
// subscription.
type Recorder struct {
	network    NetworkID
	hasNetwork bool

	lock     sync.Mutex
	calls    []*Call
	results  map[string][]interface{}
	handlers map[int]*subscription
	nextSub  int
}

// NewRecorder creates a Recorder that reports no connected network.
func NewRecorder() *Recorder {
	return &Recorder{
		results:  make(map[string][]interface{}),
		handlers: make(map[int]*subscription),
	}
}

// Connect makes the Recorder report id as its connected network.
func (r *Recorder) Connect(id NetworkID) *Recorder {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.network = id
	r.hasNetwork = true
	return r
}

func (r *Recorder) CurrentNetwork() (NetworkID, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.network, r.hasNetwork
}

// SetResult sets the outputs returned for reads of member.
func (r *Recorder) SetResult(member string, out ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.results[member] = out
}

// Calls returns the operations recorded so far.
func (r *Recorder) Calls() []*Call {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]*Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets recorded operations.
func (r *Recorder) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.calls = nil
}

func (r *Recorder) record(c *Call) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.calls = append(r.calls, c)
}

func callData(t Target, member string, args []interface{}) ([]byte, error) {
	parsed, err := t.Contract.ABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack(member, args...)
}

func (r *Recorder) Read(ctx context.Context, req *ReadRequest) ([]interface{}, error) {
	data, err := callData(req.Target, req.Member, req.Args)
	if err != nil {
		return nil, err
	}
	r.record(&Call{
		Capability: CapabilityRead,
		Contract:   req.Contract.Name(),
		Network:    req.Network,
		Address:    req.Address,
		Member:     req.Member,
		Args:       req.Args,
		CallData:   data,
	})

	r.lock.Lock()
	defer r.lock.Unlock()
	out, ok := r.results[req.Member]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoResult, req.Member)
	}
	return out, nil
}

func (r *Recorder) Prepare(ctx context.Context, req *PreparedRequest) error {
	r.record(&Call{
		Capability: CapabilityPrepare,
		Contract:   req.Contract.Name(),
		Network:    req.Network,
		Address:    req.Address,
		Member:     req.Member,
		Args:       req.Args,
		CallData:   req.Data,
	})
	return nil
}

func (r *Recorder) Write(ctx context.Context, req *WriteRequest) (*types.Transaction, error) {
	call := &Call{
		Capability: CapabilityWrite,
		Contract:   req.Contract.Name(),
		Network:    req.Network,
		Address:    req.Address,
		Member:     req.Member,
		Args:       req.Args,
	}
	if req.Prepared != nil {
		call.Args = req.Prepared.Args
		call.CallData = req.Prepared.Data
		call.Prepared = true
	} else {
		data, err := callData(req.Target, req.Member, req.Args)
		if err != nil {
			return nil, err
		}
		call.CallData = data
	}
	r.record(call)

	to := req.Address
	tx := &types.LegacyTx{To: &to, Data: call.CallData}
	if req.Opts != nil {
		tx.Value = req.Opts.Value
		tx.Gas = req.Opts.GasLimit
		if req.Opts.Nonce != nil {
			tx.Nonce = req.Opts.Nonce.Uint64()
		}
	}
	// Opts override what was prepared, field by field
	if req.Prepared != nil {
		if tx.Value == nil {
			tx.Value = req.Prepared.Value
		}
		if tx.Gas == 0 {
			tx.Gas = req.Prepared.Gas
		}
	}
	return types.NewTx(tx), nil
}

func (r *Recorder) Subscribe(ctx context.Context, req *SubscribeRequest) (event.Subscription, error) {
	topics, err := abi.MakeTopics(req.Topics...)
	if err != nil {
		return nil, fmt.Errorf("building topic filter: %w", err)
	}
	subCtx := ctx
	if req.Opts != nil && req.Opts.Context != nil {
		subCtx = req.Opts.Context
	}

	r.lock.Lock()
	id := r.nextSub
	r.nextSub++
	r.handlers[id] = &subscription{req: req, topics: topics}
	r.calls = append(r.calls, &Call{
		Capability: CapabilitySubscribe,
		Contract:   req.Contract.Name(),
		Network:    req.Network,
		Address:    req.Address,
		Member:     req.Member,
	})
	r.lock.Unlock()

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer func() {
			r.lock.Lock()
			delete(r.handlers, id)
			r.lock.Unlock()
		}()
		select {
		case <-quit:
			return nil
		case <-subCtx.Done():
			return subCtx.Err()
		}
	}), nil
}

// Subscriptions reports how many subscriptions are live.
func (r *Recorder) Subscriptions() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.handlers)
}

// Emit delivers log to every live subscription whose address, event and
// indexed topic filter match it. It returns the first handler error.
func (r *Recorder) Emit(log types.Log) error {
	r.lock.Lock()
	targets := make([]*SubscribeRequest, 0, len(r.handlers))
	for _, sub := range r.handlers {
		if sub.matches(log) {
			targets = append(targets, sub.req)
		}
	}
	r.lock.Unlock()

	for _, req := range targets {
		if err := req.Handler(log); err != nil {
			return err
		}
	}
	return nil
}

type subscription struct {
	req *SubscribeRequest
	// Filter on the indexed parameters, in declaration order
	topics [][]common.Hash
}

func (s *subscription) matches(log types.Log) bool {
	if s.req.Address != log.Address {
		return false
	}
	parsed, err := s.req.Contract.ABI()
	if err != nil {
		return false
	}
	ev, ok := parsed.Events[s.req.Member]
	if !ok {
		return false
	}
	offset := 0
	if !ev.Anonymous {
		if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
			return false
		}
		offset = 1
	}

	// An empty position matches anything, otherwise any listed hash does
	for i, alternatives := range s.topics {
		if len(alternatives) == 0 {
			continue
		}
		pos := offset + i
		if pos >= len(log.Topics) {
			return false
		}
		found := false
		for _, h := range alternatives {
			if log.Topics[pos] == h {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
