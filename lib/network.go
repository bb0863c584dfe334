package lib

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkID identifies an EVM network by its chain id.
type NetworkID uint64

// NetworkSource reports a network, if it knows one.
type NetworkSource interface {
	CurrentNetwork() (NetworkID, bool)
}

// Deployments maps a network to the address a contract is deployed at there.
type Deployments map[NetworkID]common.Address

// Address returns the stored address for the network, unmodified.
func (d Deployments) Address(id NetworkID) (common.Address, error) {
	addr, ok := d[id]
	if !ok {
		return common.Address{}, fmt.Errorf("%w %d", ErrNoDeployment, id)
	}
	return addr, nil
}

// Networks returns the networks in the table in ascending order.
func (d Deployments) Networks() []NetworkID {
	out := make([]NetworkID, 0, len(d))
	for id := range d {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d Deployments) clone() Deployments {
	out := make(Deployments, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

type processDefault struct {
	id atomic.Pointer[NetworkID] // nil when unset
}

func (p *processDefault) CurrentNetwork() (NetworkID, bool) {
	id := p.id.Load()
	if id == nil {
		return 0, false
	}
	return *id, true
}

var defaultNetwork processDefault

// ProcessDefault is the process-wide fallback network.
var ProcessDefault NetworkSource = &defaultNetwork

// SetDefaultNetwork sets the process-wide fallback network.
func SetDefaultNetwork(id NetworkID) {
	defaultNetwork.id.Store(&id)
}

// ClearDefaultNetwork unsets the process-wide fallback network.
func ClearDefaultNetwork() {
	defaultNetwork.id.Store(nil)
}

// DefaultNetwork returns the process-wide fallback network, if set.
func DefaultNetwork() (NetworkID, bool) {
	return defaultNetwork.CurrentNetwork()
}

// ResolveNetwork picks the network a call targets. An explicit override wins,
// then the currently connected network, then the fallback. Either source may be nil.
func ResolveNetwork(override *NetworkID, current NetworkSource, fallback NetworkSource) (NetworkID, error) {
	if override != nil {
		return *override, nil
	}
	if current != nil {
		if id, ok := current.CurrentNetwork(); ok {
			return id, nil
		}
	}
	if fallback != nil {
		if id, ok := fallback.CurrentNetwork(); ok {
			return id, nil
		}
	}
	return 0, ErrNoNetwork
}

// Network returns a pointer to id, for use as a Config override.
func Network(id NetworkID) *NetworkID {
	return &id
}
