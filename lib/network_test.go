package lib

import (
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticNetwork struct {
	id  NetworkID
	set bool
}

func (s staticNetwork) CurrentNetwork() (NetworkID, bool) {
	return s.id, s.set
}

func TestResolveNetwork(t *testing.T) {
	connected := staticNetwork{id: 10, set: true}
	disconnected := staticNetwork{}
	fallback := staticNetwork{id: 1, set: true}

	tests := []struct {
		name     string
		override *NetworkID
		current  NetworkSource
		fallback NetworkSource
		want     NetworkID
		err      error
	}{
		{"override wins over everything", Network(5), connected, fallback, 5, nil},
		{"override with nothing else", Network(5), nil, nil, 5, nil},
		{"override of zero is honoured", Network(0), connected, fallback, 0, nil},
		{"connected beats fallback", nil, connected, fallback, 10, nil},
		{"connected alone", nil, connected, nil, 10, nil},
		{"fallback when disconnected", nil, disconnected, fallback, 1, nil},
		{"fallback when no provider", nil, nil, fallback, 1, nil},
		{"nothing set", nil, disconnected, staticNetwork{}, 0, ErrNoNetwork},
		{"all nil", nil, nil, nil, 0, ErrNoNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveNetwork(tt.override, tt.current, tt.fallback)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessDefault(t *testing.T) {
	t.Cleanup(ClearDefaultNetwork)

	_, ok := DefaultNetwork()
	assert.False(t, ok)

	SetDefaultNetwork(1)
	id, ok := DefaultNetwork()
	require.True(t, ok)
	assert.Equal(t, NetworkID(1), id)

	got, err := ResolveNetwork(nil, staticNetwork{}, ProcessDefault)
	require.NoError(t, err)
	assert.Equal(t, NetworkID(1), got)

	ClearDefaultNetwork()
	_, err = ResolveNetwork(nil, staticNetwork{}, ProcessDefault)
	assert.ErrorIs(t, err, ErrNoNetwork)
}

func TestProcessDefaultConcurrentUpdates(t *testing.T) {
	t.Cleanup(ClearDefaultNetwork)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			SetDefaultNetwork(NetworkID(i%2 + 1))
			ClearDefaultNetwork()
		}
	}()

	for i := 0; i < 1000; i++ {
		if id, ok := DefaultNetwork(); ok {
			assert.Contains(t, []NetworkID{1, 2}, id)
		}
	}
	wg.Wait()

	_, ok := DefaultNetwork()
	assert.False(t, ok)
}

func TestDeployments(t *testing.T) {
	a := common.HexToAddress("0xAAAaaAAAaaaAaAaAaaAAAaaaAAaAaAaaAaaAAaAa")
	b := common.HexToAddress("0xbbBBbbBbbBBbBbBBbbBbbbbbBBBBBbBbbBbbBbBb")
	d := Deployments{5: b, 1: a}

	got, err := d.Address(1)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = d.Address(333)
	assert.ErrorIs(t, err, ErrNoDeployment)

	assert.Equal(t, []NetworkID{1, 5}, d.Networks())
	assert.Empty(t, Deployments{}.Networks())
}

func TestContractCopiesDeployments(t *testing.T) {
	a := common.HexToAddress("0x1111111111111111111111111111111111111111")
	table := Deployments{1: a}
	c := NewContract("Counter", counterMetaData, table)

	table[2] = a
	_, err := c.Address(2)
	assert.ErrorIs(t, err, ErrNoDeployment)

	copied := c.Deployments()
	delete(copied, 1)
	got, err := c.Address(1)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}
