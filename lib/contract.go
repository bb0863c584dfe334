package lib

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Contract pairs an interface descriptor with its deployment table.
// It is immutable and safe for concurrent use.
type Contract struct {
	name        string
	metadata    *bind.MetaData
	deployments Deployments
}

// NewContract creates a Contract. The deployment table is copied.
func NewContract(name string, md *bind.MetaData, deployments Deployments) *Contract {
	return &Contract{
		name:        name,
		metadata:    md,
		deployments: deployments.clone(),
	}
}

func (c *Contract) Name() string {
	return c.name
}

// ABI returns the parsed descriptor. Parsing is cached by bind.MetaData.
func (c *Contract) ABI() (*abi.ABI, error) {
	parsed, err := c.metadata.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("%s: parsing abi: %w", c.name, err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("%s: abi is empty", c.name)
	}
	return parsed, nil
}

// Deployments returns a copy of the deployment table.
func (c *Contract) Deployments() Deployments {
	return c.deployments.clone()
}

// Address looks up the deployment address for a network.
func (c *Contract) Address(id NetworkID) (common.Address, error) {
	addr, err := c.deployments.Address(id)
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %w", c.name, err)
	}
	return addr, nil
}

// Target is a resolved (contract, network, address) triple.
type Target struct {
	Contract *Contract
	Network  NetworkID
	Address  common.Address
}

// Target resolves the network a call goes to and the address on it.
// An address override skips the table, but the network must still resolve.
func (c *Contract) Target(current NetworkSource, cfg Config) (Target, error) {
	id, err := ResolveNetwork(cfg.Network, current, ProcessDefault)
	if err != nil {
		return Target{}, fmt.Errorf("%s: %w", c.name, err)
	}
	if cfg.Address != nil {
		return Target{Contract: c, Network: id, Address: *cfg.Address}, nil
	}
	addr, err := c.Address(id)
	if err != nil {
		return Target{}, err
	}
	return Target{Contract: c, Network: id, Address: addr}, nil
}

// Method finds a function by its unique name, its full signature, or its
// declared name when that is not overloaded.
func (c *Contract) Method(member string) (*abi.Method, error) {
	parsed, err := c.ABI()
	if err != nil {
		return nil, err
	}
	if m, ok := parsed.Methods[member]; ok {
		return &m, nil
	}
	var found *abi.Method
	count := 0
	for name := range parsed.Methods {
		m := parsed.Methods[name]
		if m.Sig == member {
			return &m, nil
		}
		if m.RawName == member {
			found = &m
			count++
		}
	}
	if count == 1 {
		return found, nil
	}
	if count > 1 {
		return nil, fmt.Errorf("%s.%s: %w: overloaded, use the full signature", c.name, member, ErrUnknownMember)
	}
	return nil, fmt.Errorf("%s.%s: %w", c.name, member, ErrUnknownMember)
}

// Event finds an event the same way Method finds a function.
func (c *Contract) Event(member string) (*abi.Event, error) {
	parsed, err := c.ABI()
	if err != nil {
		return nil, err
	}
	if e, ok := parsed.Events[member]; ok {
		return &e, nil
	}
	var found *abi.Event
	count := 0
	for name := range parsed.Events {
		e := parsed.Events[name]
		if e.Sig == member {
			return &e, nil
		}
		if e.RawName == member {
			found = &e
			count++
		}
	}
	if count == 1 {
		return found, nil
	}
	if count > 1 {
		return nil, fmt.Errorf("%s.%s: %w: overloaded, use the full signature", c.name, member, ErrUnknownMember)
	}
	return nil, fmt.Errorf("%s.%s: %w", c.name, member, ErrUnknownMember)
}
