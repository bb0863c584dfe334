package lib

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RevertError is a delegated failure whose revert data matched one of the
// contract's declared errors.
type RevertError struct {
	Contract string
	Member   string
	Name     string
	Args     []interface{}

	err error
}

func (e *RevertError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s.%s: reverted with %s(%s): %v", e.Contract, e.Member, e.Name, strings.Join(args, ", "), e.err)
}

func (e *RevertError) Unwrap() error {
	return e.err
}

// revertData pulls the raw revert payload out of a JSON-RPC error, if present.
func revertData(err error) []byte {
	var de rpc.DataError
	if !errors.As(err, &de) {
		return nil
	}
	s, ok := de.ErrorData().(string)
	if !ok {
		return nil
	}
	data, decErr := hexutil.Decode(s)
	if decErr != nil {
		return nil
	}
	return data
}

// UnpackError matches revert data against the contract's declared errors.
func (c *Contract) UnpackError(data []byte) (string, []interface{}, bool) {
	if len(data) < 4 {
		return "", nil, false
	}
	parsed, err := c.ABI()
	if err != nil {
		return "", nil, false
	}
	for name, e := range parsed.Errors {
		if !bytes.Equal(e.ID[:4], data[:4]) {
			continue
		}
		args, err := e.Inputs.Unpack(data[4:])
		if err != nil {
			return "", nil, false
		}
		return name, args, true
	}
	return "", nil, false
}

// wrap adds contract and member context to a delegated failure without
// hiding it; the original error stays reachable through errors.Is / As.
func (c *Contract) wrap(member string, err error) error {
	if err == nil {
		return nil
	}
	if name, args, ok := c.UnpackError(revertData(err)); ok {
		return &RevertError{Contract: c.name, Member: member, Name: name, Args: args, err: err}
	}
	return fmt.Errorf("%s.%s: %w", c.name, member, err)
}
