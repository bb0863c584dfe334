package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type MemberKind int

const (
	KindConstructor MemberKind = iota
	KindError
	KindEvent
	KindFunction
)

func (k MemberKind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindError:
		return "error"
	case KindEvent:
		return "event"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

type Mutability int

const (
	MutabilityNone Mutability = iota // Not a function
	ReadOnly
	Payable
	NonPayable
)

func (m Mutability) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case Payable:
		return "payable"
	case NonPayable:
		return "non-payable"
	}
	return ""
}

// In-memory representation of a single parameter or output
type Param struct {
	Name    string
	Type    abi.Type
	Indexed bool // Events only
}

// In-memory representation of a single descriptor entry
type Member struct {
	Kind       MemberKind
	Mutability Mutability
	Name       string // Unique key in the parsed abi; overloads get a numeric suffix
	RawName    string // Name as declared
	Sig        string // Canonical signature, e.g. controllerOf(uint256)
	Inputs     []Param
	Outputs    []Param
	Anonymous  bool
}

// In-memory representation of an interface descriptor, members in declaration order
type Descriptor struct {
	Name    string
	Members []*Member
	ABI     abi.ABI
	RawABI  string // Compacted JSON
}

type Deployment struct {
	Network uint64
	Address common.Address
}

// A descriptor together with its deployment table, sorted by network
type Binding struct {
	Descriptor  *Descriptor
	Deployments []Deployment
}

// In-memory representation of a manifest defining bindings to generate
// Supports json or yaml
type File struct {
	Version    string // Must be valid golang.org/x/mod/semver
	Package    string
	ImportPath string
	Runtime    string // Import path of the runtime library generated code calls into
	Output     string // File name of the generated source
	Bindings   []*Binding
}

// Accepts either a bare JSON abi array or a compiler artifact with an "abi" field
func extractABI(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("abi is empty")
	}
	if trimmed[0] == '[' {
		return trimmed, nil
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(trimmed, &artifact); err != nil {
		return nil, fmt.Errorf("abi is neither a JSON array nor an artifact object: %w", err)
	}
	if len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("artifact has no abi field")
	}
	return artifact.ABI, nil
}

func params(args abi.Arguments) []Param {
	out := make([]Param, 0, len(args))
	for _, a := range args {
		out = append(out, Param{Name: a.Name, Type: a.Type, Indexed: a.Indexed})
	}
	return out
}

func mutability(m abi.Method) Mutability {
	switch {
	case m.IsConstant():
		return ReadOnly
	case m.IsPayable():
		return Payable
	default:
		return NonPayable
	}
}

// Parse a descriptor, keeping the declaration order go-ethereum's abi maps lose
func parseDescriptor(name string, raw []byte) (*Descriptor, error) {
	raw, err := extractABI(raw)
	if err != nil {
		return nil, err
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	out := &Descriptor{
		Name:    name,
		Members: make([]*Member, 0, len(entries)),
		ABI:     parsed,
		RawABI:  compact.String(),
	}

	for i, entry := range entries {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(entry, &head); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		// Parse the entry on its own to learn its signature, then find it in the full abi
		single, err := abi.JSON(bytes.NewReader(append(append([]byte{'['}, entry...), ']')))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		switch head.Type {
		case "constructor":
			out.Members = append(out.Members, &Member{
				Kind:       KindConstructor,
				Mutability: mutability(parsed.Constructor),
				Sig:        parsed.Constructor.Sig,
				Inputs:     params(parsed.Constructor.Inputs),
			})
		case "function":
			for _, s := range single.Methods {
				m, err := methodBySig(&parsed, s.Sig)
				if err != nil {
					return nil, fmt.Errorf("entry %d: %w", i, err)
				}
				out.Members = append(out.Members, &Member{
					Kind:       KindFunction,
					Mutability: mutability(m),
					Name:       m.Name,
					RawName:    m.RawName,
					Sig:        m.Sig,
					Inputs:     params(m.Inputs),
					Outputs:    params(m.Outputs),
				})
			}
		case "event":
			for _, s := range single.Events {
				e, err := eventBySig(&parsed, s.Sig)
				if err != nil {
					return nil, fmt.Errorf("entry %d: %w", i, err)
				}
				out.Members = append(out.Members, &Member{
					Kind:      KindEvent,
					Name:      e.Name,
					RawName:   e.RawName,
					Sig:       e.Sig,
					Inputs:    params(e.Inputs),
					Anonymous: e.Anonymous,
				})
			}
		case "error":
			for name, e := range single.Errors {
				out.Members = append(out.Members, &Member{
					Kind:    KindError,
					Name:    name,
					RawName: e.Name,
					Sig:     e.Sig,
					Inputs:  params(e.Inputs),
				})
			}
		}
		// fallback and receive have no member name to bind against
	}

	return out, nil
}

func methodBySig(parsed *abi.ABI, sig string) (abi.Method, error) {
	for _, m := range parsed.Methods {
		if m.Sig == sig {
			return m, nil
		}
	}
	return abi.Method{}, fmt.Errorf("function %s missing from parsed abi", sig)
}

func eventBySig(parsed *abi.ABI, sig string) (abi.Event, error) {
	for _, e := range parsed.Events {
		if e.Sig == sig {
			return e, nil
		}
	}
	return abi.Event{}, fmt.Errorf("event %s missing from parsed abi", sig)
}

// Functions returns the function members with the given mutabilities
func (d *Descriptor) Functions(muts ...Mutability) []*Member {
	out := make([]*Member, 0)
	for _, m := range d.Members {
		if m.Kind != KindFunction {
			continue
		}
		for _, want := range muts {
			if m.Mutability == want {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (d *Descriptor) Events() []*Member {
	out := make([]*Member, 0)
	for _, m := range d.Members {
		if m.Kind == KindEvent {
			out = append(out, m)
		}
	}
	return out
}
