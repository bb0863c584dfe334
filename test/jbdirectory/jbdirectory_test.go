package jbdirectory

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jshufro/evbindgen/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sepolia   lib.NetworkID = 11155111
	opSepolia lib.NetworkID = 11155420
)

var (
	controller = common.HexToAddress("0x00000000000000000000000000000000000c0de1")
	terminal   = common.HexToAddress("0x00000000000000000000000000000000000c0de2")
	native     = common.HexToAddress("0x000000000000000000000000000000000000EEEe")
)

func TestDeploymentTable(t *testing.T) {
	assert.Equal(t, []lib.NetworkID{sepolia, opSepolia}, JBDirectory.Deployments().Networks())

	addr, err := JBDirectory.Address(opSepolia)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x9482199351819093786579754323194875749118"), addr)

	_, err = JBMultiTerminal.Address(1)
	assert.ErrorIs(t, err, lib.ErrNoDeployment)
}

func TestSpecializedReadMatchesUnbound(t *testing.T) {
	ctx := context.Background()
	projectID := big.NewInt(12)

	specialized := lib.NewRecorder().Connect(sepolia)
	specialized.SetResult("controllerOf", controller)
	got, err := ReadJBDirectoryControllerOf(ctx, specialized, lib.ReadConfig{}, projectID)
	require.NoError(t, err)
	assert.Equal(t, controller, got)

	unbound := lib.NewRecorder().Connect(sepolia)
	unbound.SetResult("controllerOf", controller)
	out, err := ReadJBDirectory(ctx, unbound, "controllerOf", lib.ReadConfig{}, projectID)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{controller}, out)

	assert.Equal(t, unbound.Calls(), specialized.Calls())
}

func TestSpecializedWriteMatchesUnbound(t *testing.T) {
	ctx := context.Background()
	cfg := lib.WriteConfig{
		Config: lib.Config{Network: lib.Network(opSepolia)},
		Opts:   &bind.TransactOpts{Value: big.NewInt(1e18), GasLimit: 300000},
	}
	args := []interface{}{big.NewInt(12), native, big.NewInt(1e18), controller, big.NewInt(0), "gm", []byte{}}

	specialized := lib.NewRecorder()
	tx, err := WriteJBMultiTerminalPay(ctx, specialized, cfg, big.NewInt(12), native, big.NewInt(1e18), controller, big.NewInt(0), "gm", []byte{})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1e18), tx.Value())

	unbound := lib.NewRecorder()
	_, err = WriteJBMultiTerminal(ctx, unbound, "pay", cfg, args...)
	require.NoError(t, err)

	require.Len(t, specialized.Calls(), 1)
	assert.Equal(t, unbound.Calls(), specialized.Calls())
	call := specialized.Calls()[0]
	assert.Equal(t, opSepolia, call.Network)
	assert.Equal(t, common.HexToAddress("0x3667127684268465632122330792440268599528"), call.Address)
}

func TestWriteRejectsValueForNonPayable(t *testing.T) {
	rec := lib.NewRecorder().Connect(sepolia)
	_, err := WriteJBDirectorySetControllerOf(context.Background(), rec,
		lib.WriteConfig{Opts: &bind.TransactOpts{Value: big.NewInt(1)}}, big.NewInt(1), controller)
	assert.ErrorIs(t, err, lib.ErrNotPayable)
	assert.Empty(t, rec.Calls())
}

func TestPreparedWrite(t *testing.T) {
	ctx := context.Background()
	rec := lib.NewRecorder().Connect(sepolia)

	req, err := PrepareJBDirectory(ctx, rec, "setTerminalsOf", lib.WriteConfig{}, big.NewInt(3), []common.Address{terminal})
	require.NoError(t, err)

	_, err = SubmitJBDirectorySetControllerOf(ctx, rec, lib.WriteConfig{}, req)
	assert.ErrorIs(t, err, lib.ErrPreparedMismatch)

	tx, err := SubmitJBDirectorySetTerminalsOf(ctx, rec, lib.WriteConfig{}, req)
	require.NoError(t, err)
	assert.Equal(t, req.Data, tx.Data())

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.True(t, calls[1].Prepared)
}

func TestUndeployedNetwork(t *testing.T) {
	rec := lib.NewRecorder().Connect(333)
	_, err := ReadJBDirectoryTerminalsOf(context.Background(), rec, lib.ReadConfig{}, big.NewInt(1))
	assert.ErrorIs(t, err, lib.ErrNoDeployment)

	_, err = SubscribeJBDirectoryAddTerminal(context.Background(), rec, lib.SubscribeConfig{}, func(*JBDirectoryAddTerminalEvent) {})
	assert.ErrorIs(t, err, lib.ErrNoDeployment)
	assert.Empty(t, rec.Calls())
}

func TestTupleOutputs(t *testing.T) {
	ctx := context.Background()
	rec := lib.NewRecorder().Connect(sepolia)

	// Decoded tuples arrive as anonymous structs with abi tags
	decoded := struct {
		Token    common.Address `json:"token"`
		Decimals uint8          `json:"decimals"`
		Currency uint32         `json:"currency"`
	}{native, 18, 61166}
	rec.SetResult("accountingContextForTokenOf", decoded)
	rec.SetResult("balanceAndSurplusOf", big.NewInt(500), big.NewInt(200))

	accounting, err := ReadJBMultiTerminalAccountingContextForTokenOf(ctx, rec, lib.ReadConfig{}, big.NewInt(1), native)
	require.NoError(t, err)
	assert.Equal(t, JBAccountingContext{Token: native, Decimals: 18, Currency: 61166}, accounting)

	balances, err := ReadJBMultiTerminalBalanceAndSurplusOf(ctx, rec, lib.ReadConfig{}, big.NewInt(1), native)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(500), balances.Balance)
	assert.Equal(t, big.NewInt(200), balances.Surplus)
}

func TestTypedSubscription(t *testing.T) {
	rec := lib.NewRecorder().Connect(sepolia)
	addr, err := JBMultiTerminal.Address(sepolia)
	require.NoError(t, err)

	var got *JBMultiTerminalPayEvent
	sub, err := SubscribeJBMultiTerminalPay(context.Background(), rec, lib.SubscribeConfig{}, func(e *JBMultiTerminalPayEvent) {
		got = e
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	parsed, err := JBMultiTerminal.ABI()
	require.NoError(t, err)
	ev := parsed.Events["Pay"]
	data, err := ev.Inputs.NonIndexed().Pack(controller, terminal, big.NewInt(5), big.NewInt(5000), "first", []byte{0x01}, controller)
	require.NoError(t, err)

	log := types.Log{
		Address: addr,
		Topics:  []common.Hash{ev.ID, common.BigToHash(big.NewInt(7)), common.BigToHash(big.NewInt(2)), common.BigToHash(big.NewInt(12))},
		Data:    data,
	}
	require.NoError(t, rec.Emit(log))

	require.NotNil(t, got)
	assert.Equal(t, big.NewInt(7), got.RulesetId)
	assert.Equal(t, big.NewInt(2), got.RulesetCycleNumber)
	assert.Equal(t, big.NewInt(12), got.ProjectId)
	assert.Equal(t, controller, got.Payer)
	assert.Equal(t, terminal, got.Beneficiary)
	assert.Equal(t, big.NewInt(5), got.Amount)
	assert.Equal(t, big.NewInt(5000), got.NewlyIssuedTokenCount)
	assert.Equal(t, "first", got.Memo)
	assert.Equal(t, []byte{0x01}, got.Metadata)
	assert.Equal(t, controller, got.Caller)
	assert.Equal(t, log, got.Raw)
}

func TestEventSignatureTopic(t *testing.T) {
	parsed, err := JBDirectory.ABI()
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256Hash([]byte("SetController(uint256,address,address)")), parsed.Events["SetController"].ID)
}
