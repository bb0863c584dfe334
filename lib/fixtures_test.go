package lib

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const counterABI = `[
	{"type":"function","name":"count","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"get","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"value","type":"uint256"},{"name":"owner","type":"address"}]},
	{"type":"function","name":"increment","stateMutability":"nonpayable","inputs":[{"name":"by","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"deposit","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"set","stateMutability":"nonpayable","inputs":[{"name":"value","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"set","stateMutability":"nonpayable","inputs":[{"name":"value","type":"uint256"},{"name":"owner","type":"address"}],"outputs":[]},
	{"type":"event","name":"Incremented","anonymous":false,"inputs":[{"name":"caller","type":"address","indexed":true},{"name":"by","type":"uint256","indexed":false},{"name":"total","type":"uint256","indexed":false}]},
	{"type":"event","name":"Labelled","anonymous":false,"inputs":[{"name":"label","type":"string","indexed":true},{"name":"id","type":"uint256","indexed":false}]},
	{"type":"event","name":"Ping","anonymous":true,"inputs":[{"name":"id","type":"uint256","indexed":true},{"name":"tag","type":"bytes32","indexed":false}]},
	{"type":"error","name":"Unauthorized","inputs":[{"name":"caller","type":"address"}]}
]`

var (
	counterMetaData = &bind.MetaData{ABI: counterABI}

	addrA = common.HexToAddress("0xAAAaaAAAaaaAaAaAaaAAAaaaAAaAaAaaAaaAAaAa")
	addrB = common.HexToAddress("0xbbBBbbBbbBBbBbBBbbBbbbbbBBBBBbBbbBbbBbBb")
	addrC = common.HexToAddress("0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC")
)

func newCounter() *Contract {
	return NewContract("Counter", counterMetaData, Deployments{1: addrA, 5: addrB})
}

// Builds a log for a non-anonymous event the way a node would deliver it.
func counterLog(t *testing.T, c *Contract, name string, address common.Address, indexed []common.Hash, data ...interface{}) types.Log {
	t.Helper()
	parsed, err := c.ABI()
	require.NoError(t, err)
	ev, ok := parsed.Events[name]
	require.True(t, ok)

	packed, err := ev.Inputs.NonIndexed().Pack(data...)
	require.NoError(t, err)

	topics := indexed
	if !ev.Anonymous {
		topics = append([]common.Hash{ev.ID}, indexed...)
	}
	return types.Log{Address: address, Topics: topics, Data: packed, BlockNumber: 100}
}

func bigHash(v int64) common.Hash {
	return common.BigToHash(big.NewInt(v))
}
