package lib

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

// Event is a decoded log. Args holds the declared parameters in declared order;
// indexed parameters of dynamic type arrive as their topic hash.
type Event struct {
	Contract string
	Name     string
	Args     []interface{}
	Raw      types.Log
}

var (
	errNoEventSignature       = errors.New("log has no event signature topic")
	errEventSignatureMismatch = errors.New("log signature does not match event")
	errTopicCount             = errors.New("log topic count does not match indexed parameters")
)

// hashedTopic reports whether an indexed parameter is stored as a keccak hash.
func hashedTopic(t abi.Type) bool {
	switch t.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return true
	}
	return false
}

func decodeLog(ev *abi.Event, log types.Log) ([]interface{}, error) {
	topics := log.Topics
	if !ev.Anonymous {
		if len(topics) == 0 {
			return nil, errNoEventSignature
		}
		if topics[0] != ev.ID {
			return nil, errEventSignatureMismatch
		}
		topics = topics[1:]
	}

	indexed := 0
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed++
		}
	}
	if len(topics) != indexed {
		return nil, fmt.Errorf("%w: have %d, want %d", errTopicCount, len(topics), indexed)
	}

	var data []interface{}
	if nonIndexed := ev.Inputs.NonIndexed(); len(nonIndexed) > 0 {
		var err error
		data, err = nonIndexed.UnpackValues(log.Data)
		if err != nil {
			return nil, fmt.Errorf("unpacking data: %w", err)
		}
	}

	out := make([]interface{}, len(ev.Inputs))
	ti, di := 0, 0
	for i, arg := range ev.Inputs {
		if !arg.Indexed {
			out[i] = data[di]
			di++
			continue
		}
		topic := topics[ti]
		ti++
		if hashedTopic(arg.Type) {
			out[i] = topic
			continue
		}
		word, err := abi.Arguments{{Type: arg.Type}}.UnpackValues(topic.Bytes())
		if err != nil {
			return nil, fmt.Errorf("unpacking topic %s: %w", arg.Name, err)
		}
		out[i] = word[0]
	}
	return out, nil
}
