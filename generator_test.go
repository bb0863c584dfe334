package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Top-level declarations of a Go source file, by name
func declarations(t *testing.T, src []byte) map[string]ast.Decl {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	out := make(map[string]ast.Decl)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			out[d.Name.Name] = d
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					out[s.Name.Name] = d
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out[n.Name] = d
					}
				}
			}
		}
	}
	return out
}

func generateFromABI(t *testing.T, contracts map[string]string) ([]byte, error) {
	t.Helper()
	dir := t.TempDir()
	var manifest strings.Builder
	manifest.WriteString("version: v1.0.0\npackage: bindings\ncontracts:\n")

	keys := make([]string, 0, len(contracts))
	for name := range contracts {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, name := range keys {
		writeFile(t, dir, name+".json", contracts[name])
		manifest.WriteString("  - name: " + name + "\n    abi: " + name + ".json\n    deployments:\n      \"1\": \"0x00000000000000000000000000000000000000aa\"\n")
	}

	f, err := parseManifest([]byte(manifest.String()), dir)
	require.NoError(t, err)
	return generate(f, zaptest.NewLogger(t))
}

func TestGenerateMatchesCommittedBindings(t *testing.T) {
	f, err := loadManifest(filepath.Join("test", "evbindgen.yaml"))
	require.NoError(t, err)
	src, err := generate(f, zaptest.NewLogger(t))
	require.NoError(t, err)

	committed, err := os.ReadFile(filepath.Join("test", "jbdirectory", f.Output))
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(src),
		"test/jbdirectory is stale, regenerate it with: evbindgen generate test/evbindgen.yaml -o test/jbdirectory")
}

func TestGenerateAccessorsPerMember(t *testing.T) {
	f, err := loadManifest(filepath.Join("test", "evbindgen.yaml"))
	require.NoError(t, err)
	src, err := generate(f, zap.NewNop())
	require.NoError(t, err)
	decls := declarations(t, src)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by evbindgen. DO NOT EDIT."))

	for _, b := range f.Bindings {
		n := b.Descriptor.Name
		for _, unbound := range []string{n, n + "MetaData", "Read" + n, "Prepare" + n, "Write" + n, "Submit" + n, "Subscribe" + n} {
			assert.Contains(t, decls, unbound)
		}

		for _, m := range b.Descriptor.Members {
			ident := n + capitalise(m.Name)
			switch {
			case m.Kind == KindFunction && m.Mutability == ReadOnly:
				assert.Contains(t, decls, "Read"+ident)
				assert.NotContains(t, decls, "Write"+ident)
			case m.Kind == KindFunction:
				assert.Contains(t, decls, "Write"+ident)
				assert.Contains(t, decls, "Submit"+ident)
				assert.NotContains(t, decls, "Read"+ident)
			case m.Kind == KindEvent:
				assert.Contains(t, decls, "Subscribe"+ident)
				assert.Contains(t, decls, ident+"Event")
			case m.Name != "":
				for _, prefix := range []string{"Read", "Write", "Submit", "Subscribe"} {
					assert.NotContains(t, decls, prefix+ident)
				}
			}
		}
	}

	// Deployment tables are embedded verbatim
	assert.Contains(t, string(src), `11155111: common.HexToAddress("0x5260181590830166131860913909960308246281")`)
	assert.Contains(t, string(src), `11155420: common.HexToAddress("0x3667127684268465632122330792440268599528")`)

	// Shared tuple struct, single and multiple outputs
	assert.Contains(t, decls, "JBAccountingContext")
	assert.Contains(t, decls, "JBMultiTerminalBalanceAndSurplusOfOutput")
	assert.Contains(t, string(src), "func ReadJBMultiTerminalAccountingContextsOf(ctx context.Context, p lib.Provider, cfg lib.ReadConfig, projectId *big.Int) ([]JBAccountingContext, error)")
}

func TestGenerateParameterNames(t *testing.T) {
	src, err := generateFromABI(t, map[string]string{
		"Odd": `[
			{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"ctx","type":"address"},{"name":"","type":"uint256"},{"name":"_amount","type":"uint8"},{"name":"amount","type":"uint8"}],"outputs":[]},
			{"type":"event","name":"Moved","anonymous":false,"inputs":[{"name":"raw","type":"uint256","indexed":false},{"name":"note","type":"string","indexed":true},{"name":"","type":"bytes","indexed":false}]}
		]`,
	})
	require.NoError(t, err)
	s := string(src)

	assert.Contains(t, s, "func WriteOddTransfer(ctx context.Context, p lib.Provider, cfg lib.WriteConfig, ctx_ common.Address, arg1 *big.Int, amount uint8, amount_ uint8) (*types.Transaction, error)")
	assert.Contains(t, s, "Raw_ *big.Int")
	assert.Contains(t, s, "Note common.Hash")
	assert.Contains(t, s, "Arg2 []byte")
}

func TestGenerateUnnamedTuples(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dir := t.TempDir()
	writeFile(t, dir, "Pairs.json", `[
		{"type":"function","name":"first","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple","components":[{"name":"a","type":"uint256"},{"name":"b","type":"bool"}]}]},
		{"type":"function","name":"second","stateMutability":"view","inputs":[{"name":"p","type":"tuple[]","components":[{"name":"a","type":"uint256"},{"name":"b","type":"bool"}]}],"outputs":[]}
	]`)
	f, err := parseManifest([]byte("version: v1.0.0\npackage: pairs\ncontracts:\n  - name: Pairs\n    abi: Pairs.json\n"), dir)
	require.NoError(t, err)

	src, err := generate(f, zap.New(core))
	require.NoError(t, err)
	decls := declarations(t, src)

	assert.Contains(t, decls, "PairsTuple0")
	assert.NotContains(t, decls, "PairsTuple1", "identical tuples share a struct")
	assert.Contains(t, string(src), "func ReadPairsSecond(ctx context.Context, p lib.Provider, cfg lib.ReadConfig, p_ []PairsTuple0) error")
	assert.Equal(t, 1, logs.FilterMessage("tuple has no internalType, generating a name").Len())
}

func TestGenerateRejectsCollidingIdentifiers(t *testing.T) {
	// ReadABC comes out of both A.bC and AB.c
	_, err := generateFromABI(t, map[string]string{
		"A":  `[{"type":"function","name":"bC","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]}]`,
		"AB": `[{"type":"function","name":"c","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]}]`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReadABC is generated more than once")
}

func TestGenerateRejectsConflictingStructs(t *testing.T) {
	_, err := generateFromABI(t, map[string]string{
		"One": `[{"type":"function","name":"get","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple","internalType":"struct Info","components":[{"name":"a","type":"uint256"}]}]}]`,
		"Two": `[{"type":"function","name":"get","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple","internalType":"struct Info","components":[{"name":"a","type":"address"}]}]}]`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "struct Info is defined as both")
}

func TestGoTypes(t *testing.T) {
	src, err := generateFromABI(t, map[string]string{
		"Types": `[{"type":"function","name":"all","stateMutability":"pure","inputs":[
			{"name":"a","type":"uint8"},{"name":"b","type":"int64"},{"name":"c","type":"uint24"},{"name":"d","type":"int256"},
			{"name":"e","type":"bool"},{"name":"f","type":"string"},{"name":"g","type":"address"},{"name":"h","type":"bytes32"},
			{"name":"i","type":"bytes4"},{"name":"j","type":"bytes"},{"name":"k","type":"function"},{"name":"l","type":"uint16[]"},
			{"name":"m","type":"address[3]"}
		],"outputs":[]}]`,
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), "a uint8, b int64, c *big.Int, d *big.Int, e bool, f string, g common.Address, h [32]byte, i [4]byte, j []byte, k [24]byte, l []uint16, m [3]common.Address")
}
