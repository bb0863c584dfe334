package main

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/multierr"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	defaultRuntime = "github.com/jshufro/evbindgen/lib"
	// Manifests with a different major version are rejected
	manifestMajor = "v1"
)

type manifestContract struct {
	Name        string            `yaml:"name"`
	ABI         string            `yaml:"abi"`
	Deployments map[string]string `yaml:"deployments"`
}

type manifest struct {
	Version    string             `yaml:"version"`
	Package    string             `yaml:"package"`
	ImportPath string             `yaml:"import_path"`
	Runtime    string             `yaml:"runtime"`
	Output     string             `yaml:"output"`
	Contracts  []manifestContract `yaml:"contracts"`
}

func loadManifest(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	f, err := parseManifest(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return f, nil
}

// Parse a manifest. ABI paths are resolved relative to dir. Every problem
// found is reported, not just the first.
func parseManifest(data []byte, dir string) (*File, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	var errs error

	switch {
	case m.Version == "":
		errs = multierr.Append(errs, fmt.Errorf("version must be set"))
	case !semver.IsValid(m.Version):
		errs = multierr.Append(errs, fmt.Errorf("version %q is not valid semver", m.Version))
	case semver.Major(m.Version) != manifestMajor:
		errs = multierr.Append(errs, fmt.Errorf("version %s is not supported, want %s.x.x", m.Version, manifestMajor))
	}

	if !token.IsIdentifier(m.Package) {
		errs = multierr.Append(errs, fmt.Errorf("package %q is not a valid Go package name", m.Package))
	}

	out := &File{
		Version:    m.Version,
		Package:    m.Package,
		ImportPath: m.ImportPath,
		Runtime:    m.Runtime,
		Output:     m.Output,
	}
	if out.ImportPath == "" {
		out.ImportPath = m.Package
	}
	if out.Runtime == "" {
		out.Runtime = defaultRuntime
	}
	if out.Output == "" {
		out.Output = m.Package + ".bind.go"
	}
	if filepath.Base(out.Output) != out.Output || !strings.HasSuffix(out.Output, ".go") {
		errs = multierr.Append(errs, fmt.Errorf("output %q must be a plain .go file name", out.Output))
	}

	if len(m.Contracts) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("no contracts defined"))
	}

	seen := make(map[string]struct{})
	for i, c := range m.Contracts {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: name must be an exported Go identifier", label))
		}
		if _, dup := seen[c.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: defined more than once", label))
		}
		seen[c.Name] = struct{}{}

		deployments, err := parseDeployments(c.Deployments)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: %w", label, err))
		}

		if c.ABI == "" {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: abi path must be set", label))
			continue
		}
		abiPath := c.ABI
		if !filepath.IsAbs(abiPath) {
			abiPath = filepath.Join(dir, abiPath)
		}
		raw, err := os.ReadFile(abiPath)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: %w", label, err))
			continue
		}
		desc, err := parseDescriptor(c.Name, raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("contract %s: parsing %s: %w", label, c.ABI, err))
			continue
		}

		out.Bindings = append(out.Bindings, &Binding{
			Descriptor:  desc,
			Deployments: deployments,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func parseDeployments(in map[string]string) ([]Deployment, error) {
	keys := make([]string, 0, len(in))
	for network := range in {
		keys = append(keys, network)
	}
	sort.Strings(keys)

	var errs error
	out := make([]Deployment, 0, len(in))
	// "1" and "01" are the same chain
	seen := make(map[uint64]int)
	for _, network := range keys {
		address := in[network]
		id, err := strconv.ParseUint(network, 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("network %q is not a chain id", network))
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			errs = multierr.Append(errs, fmt.Errorf("network %d is listed more than once", id))
		}
		if !common.IsHexAddress(address) {
			errs = multierr.Append(errs, fmt.Errorf("network %d: %q is not an address", id, address))
			continue
		}
		out = append(out, Deployment{Network: id, Address: common.HexToAddress(address)})
	}
	if errs != nil {
		return nil, errs
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Network < out[j].Network })
	return out, nil
}
