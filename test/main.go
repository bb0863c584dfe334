package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jshufro/evbindgen/lib"
	"github.com/jshufro/evbindgen/test/jbdirectory"
	"go.uber.org/zap"
)

func main() {
	rpcURL := flag.String("rpc", "http://127.0.0.1:8545", "execution client endpoint")
	project := flag.Int64("project", 1, "project id to inspect")
	token := flag.String("token", "0x000000000000000000000000000000000000EEEe", "token to look up the primary terminal for")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := lib.Dial(ctx, *rpcURL, lib.WithLogger(logger))
	if err != nil {
		logger.Fatal("dialing", zap.Error(err))
	}
	defer provider.Close()

	projectID := big.NewInt(*project)

	controller, err := jbdirectory.ReadJBDirectoryControllerOf(ctx, provider, lib.ReadConfig{}, projectID)
	if err != nil {
		logger.Fatal("reading controller", zap.Error(err))
	}
	terminals, err := jbdirectory.ReadJBDirectoryTerminalsOf(ctx, provider, lib.ReadConfig{}, projectID)
	if err != nil {
		logger.Fatal("reading terminals", zap.Error(err))
	}
	primary, err := jbdirectory.ReadJBDirectoryPrimaryTerminalOf(ctx, provider, lib.ReadConfig{}, projectID, common.HexToAddress(*token))
	if err != nil {
		logger.Fatal("reading primary terminal", zap.Error(err))
	}

	fmt.Printf("project %d\n", projectID)
	fmt.Printf("  controller: %s\n", controller)
	fmt.Printf("  primary terminal: %s\n", primary)
	for _, t := range terminals {
		// Read the terminal at its actual address, not the one in the deployment table
		addr := t
		balances, err := jbdirectory.ReadJBMultiTerminalBalanceAndSurplusOf(ctx, provider,
			lib.ReadConfig{Config: lib.Config{Address: &addr}}, projectID, common.HexToAddress(*token))
		if err != nil {
			logger.Warn("reading terminal balance", zap.Stringer("terminal", t), zap.Error(err))
			continue
		}
		fmt.Printf("  terminal %s: balance %s surplus %s\n", t, balances.Balance, balances.Surplus)
	}
}
