package lib

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Read invokes a read-only member of c and returns its decoded outputs.
func Read(ctx context.Context, p Provider, c *Contract, member string, cfg ReadConfig, args ...interface{}) ([]interface{}, error) {
	method, err := c.Method(member)
	if err != nil {
		return nil, err
	}
	if !method.IsConstant() {
		return nil, fmt.Errorf("%s.%s: %w: read needs a view or pure function", c.name, method.Name, ErrCapability)
	}
	target, err := c.Target(p, cfg.Config)
	if err != nil {
		return nil, err
	}

	out, err := p.Read(ctx, &ReadRequest{
		Target: target,
		Member: method.Name,
		Args:   args,
		Opts:   cfg.Opts,
	})
	if err != nil {
		return nil, c.wrap(method.Name, err)
	}
	return out, nil
}

// Prepare encodes and validates a call to a mutating member of c without
// submitting it. The result can be passed to Submit.
func Prepare(ctx context.Context, p Provider, c *Contract, member string, cfg WriteConfig, args ...interface{}) (*PreparedRequest, error) {
	method, err := c.mutating(member)
	if err != nil {
		return nil, err
	}
	target, err := c.Target(p, cfg.Config)
	if err != nil {
		return nil, err
	}

	parsed, err := c.ABI()
	if err != nil {
		return nil, err
	}
	data, err := parsed.Pack(method.Name, args...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: packing arguments: %w", c.name, method.Name, err)
	}

	req := &PreparedRequest{
		Target: target,
		Member: method.Name,
		Args:   args,
		Data:   data,
	}
	if cfg.Opts != nil {
		req.From = cfg.Opts.From
		req.Value = cfg.Opts.Value
		req.Gas = cfg.Opts.GasLimit
	}
	if err := c.checkValue(method, req.Value); err != nil {
		return nil, err
	}

	if err := p.Prepare(ctx, req); err != nil {
		return nil, c.wrap(method.Name, err)
	}
	return req, nil
}

// Write submits a transaction invoking a mutating member of c.
func Write(ctx context.Context, p Provider, c *Contract, member string, cfg WriteConfig, args ...interface{}) (*types.Transaction, error) {
	method, err := c.mutating(member)
	if err != nil {
		return nil, err
	}
	target, err := c.Target(p, cfg.Config)
	if err != nil {
		return nil, err
	}
	if err := c.checkValue(method, optsValue(cfg)); err != nil {
		return nil, err
	}

	tx, err := p.Write(ctx, &WriteRequest{
		Target: target,
		Member: method.Name,
		Args:   args,
		Opts:   cfg.Opts,
	})
	if err != nil {
		return nil, c.wrap(method.Name, err)
	}
	return tx, nil
}

// Submit sends a request produced by Prepare. The request must belong to the
// same contract and member, and target what cfg resolves to now.
func Submit(ctx context.Context, p Provider, c *Contract, member string, cfg WriteConfig, req *PreparedRequest) (*types.Transaction, error) {
	method, err := c.mutating(member)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%s.%s: %w: no request", c.name, method.Name, ErrPreparedMismatch)
	}
	if req.Contract == nil {
		return nil, fmt.Errorf("%s.%s: %w: request has no contract", c.name, method.Name, ErrPreparedMismatch)
	}
	target, err := c.Target(p, cfg.Config)
	if err != nil {
		return nil, err
	}
	switch {
	case req.Contract != c:
		return nil, fmt.Errorf("%s.%s: %w: prepared for contract %s", c.name, method.Name, ErrPreparedMismatch, req.Contract.Name())
	case req.Member != method.Name:
		return nil, fmt.Errorf("%s.%s: %w: prepared for member %s", c.name, method.Name, ErrPreparedMismatch, req.Member)
	case req.Network != target.Network:
		return nil, fmt.Errorf("%s.%s: %w: prepared for network %d, call resolves to %d", c.name, method.Name, ErrPreparedMismatch, req.Network, target.Network)
	case req.Address != target.Address:
		return nil, fmt.Errorf("%s.%s: %w: prepared for address %s, call resolves to %s", c.name, method.Name, ErrPreparedMismatch, req.Address, target.Address)
	}
	value := req.Value
	if v := optsValue(cfg); v != nil {
		value = v
	}
	if err := c.checkValue(method, value); err != nil {
		return nil, err
	}

	tx, err := p.Write(ctx, &WriteRequest{
		Target:   target,
		Member:   method.Name,
		Opts:     cfg.Opts,
		Prepared: req,
	})
	if err != nil {
		return nil, c.wrap(method.Name, err)
	}
	return tx, nil
}

// Subscribe registers cb for every log of the event member of c. Exactly one
// handler is registered per call.
func Subscribe(ctx context.Context, p Provider, c *Contract, member string, cfg SubscribeConfig, cb func(*Event)) (event.Subscription, error) {
	ev, err := c.Event(member)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, fmt.Errorf("%s.%s: %w", c.name, ev.Name, ErrNoCallback)
	}
	target, err := c.Target(p, cfg.Config)
	if err != nil {
		return nil, err
	}

	name := ev.Name
	handler := func(log types.Log) error {
		args, err := decodeLog(ev, log)
		if err != nil {
			return fmt.Errorf("%s.%s: decoding log: %w", c.name, name, err)
		}
		cb(&Event{Contract: c.name, Name: name, Args: args, Raw: log})
		return nil
	}

	sub, err := p.Subscribe(ctx, &SubscribeRequest{
		Target:  target,
		Member:  name,
		Topics:  cfg.Topics,
		Opts:    cfg.Opts,
		Handler: handler,
	})
	if err != nil {
		return nil, c.wrap(name, err)
	}
	return sub, nil
}

func (c *Contract) mutating(member string) (*abi.Method, error) {
	method, err := c.Method(member)
	if err != nil {
		return nil, err
	}
	if method.IsConstant() {
		return nil, fmt.Errorf("%s.%s: %w: write needs a mutating function", c.name, method.Name, ErrCapability)
	}
	return method, nil
}

func (c *Contract) checkValue(method *abi.Method, value *big.Int) error {
	if value != nil && value.Sign() > 0 && !method.IsPayable() {
		return fmt.Errorf("%s.%s: %w", c.name, method.Name, ErrNotPayable)
	}
	return nil
}

func optsValue(cfg WriteConfig) *big.Int {
	if cfg.Opts == nil {
		return nil
	}
	return cfg.Opts.Value
}
