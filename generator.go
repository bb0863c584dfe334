package main

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"
)

var (
	contextPackage = protogen.GoImportPath("context")
	bigPackage     = protogen.GoImportPath("math/big")
	abiPackage     = protogen.GoImportPath("github.com/ethereum/go-ethereum/accounts/abi")
	bindPackage    = protogen.GoImportPath("github.com/ethereum/go-ethereum/accounts/abi/bind")
	commonPackage  = protogen.GoImportPath("github.com/ethereum/go-ethereum/common")
	typesPackage   = protogen.GoImportPath("github.com/ethereum/go-ethereum/core/types")
	eventPackage   = protogen.GoImportPath("github.com/ethereum/go-ethereum/event")
)

// Names generated accessors use for their own parameters, plus the package
// names their bodies refer to. Descriptor parameter names must not shadow them.
var reservedNames = map[string]struct{}{
	"ctx": {}, "p": {}, "cfg": {}, "cb": {}, "req": {},
	"out": {}, "err": {}, "outstruct": {}, "member": {}, "args": {},
	"context": {}, "big": {}, "abi": {}, "bind": {}, "common": {}, "types": {}, "event": {}, "lib": {},
	// Predeclared identifiers accessor bodies and signatures use
	"new": {}, "nil": {}, "error": {}, "bool": {}, "string": {}, "byte": {},
	"int8": {}, "int16": {}, "int32": {}, "int64": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
}

// Generated Go struct for an abi tuple
type tupleStruct struct {
	name   string
	sig    string // abi type string, used to detect conflicting definitions
	fields []tupleField
}

type tupleField struct {
	name string
	typ  abi.Type
}

type generator struct {
	g       *protogen.GeneratedFile
	runtime protogen.GoImportPath
	logger  *zap.Logger

	idents  map[string]struct{}     // Top-level identifiers declared so far
	structs map[string]*tupleStruct // Tuple structs by name
	order   []*tupleStruct          // Tuple structs in discovery order

	// Counters for the summary log line
	accessors int
}

// Produce the gofmt'd source of the bindings described by f
func generate(f *File, logger *zap.Logger) ([]byte, error) {
	plugin, err := protogen.Options{}.New(&pluginpb.CodeGeneratorRequest{})
	if err != nil {
		return nil, err
	}

	gen := &generator{
		g:       plugin.NewGeneratedFile(f.Output, protogen.GoImportPath(f.ImportPath)),
		runtime: protogen.GoImportPath(f.Runtime),
		logger:  logger,
		idents:  make(map[string]struct{}),
		structs: make(map[string]*tupleStruct),
	}

	gen.g.P("// Code generated by evbindgen. DO NOT EDIT.")
	gen.g.P()
	gen.g.P("package ", f.Package)
	gen.g.P()

	// Tuple structs are shared by every contract in the package, so find them first
	for _, b := range f.Bindings {
		if err := gen.collectTuples(b.Descriptor); err != nil {
			return nil, err
		}
	}
	for _, s := range gen.order {
		if err := gen.generateStruct(s); err != nil {
			return nil, err
		}
	}

	for _, b := range f.Bindings {
		if err := gen.generateBinding(b); err != nil {
			return nil, fmt.Errorf("contract %s: %w", b.Descriptor.Name, err)
		}
	}

	content, err := gen.g.Content()
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	logger.Debug("generated bindings",
		zap.String("package", f.Package),
		zap.Int("contracts", len(f.Bindings)),
		zap.Int("structs", len(gen.order)),
		zap.Int("accessors", gen.accessors))
	return content, nil
}

func (gen *generator) declare(name string) error {
	if _, dup := gen.idents[name]; dup {
		return fmt.Errorf("identifier %s is generated more than once", name)
	}
	gen.idents[name] = struct{}{}
	return nil
}

func (gen *generator) lib(name string) string {
	return gen.g.QualifiedGoIdent(gen.runtime.Ident(name))
}

func capitalise(s string) string {
	s = abi.ToCamelCase(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func decapitalise(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Go names for the accessor parameters of a member's inputs
func paramNames(ps []Param) []string {
	out := make([]string, len(ps))
	seen := make(map[string]struct{})
	for i, p := range ps {
		n := decapitalise(abi.ToCamelCase(p.Name))
		if n == "" || !token.IsIdentifier(n) {
			n = fmt.Sprintf("arg%d", i)
		}
		for {
			_, reserved := reservedNames[n]
			_, dup := seen[n]
			if !reserved && !dup {
				break
			}
			n += "_"
		}
		seen[n] = struct{}{}
		out[i] = n
	}
	return out
}

// Go names for struct fields; taken are names the struct already uses
func fieldNames(ps []Param, taken ...string) []string {
	out := make([]string, len(ps))
	seen := make(map[string]struct{})
	for _, t := range taken {
		seen[t] = struct{}{}
	}
	for i, p := range ps {
		n := capitalise(p.Name)
		if n == "" || !token.IsIdentifier(n) {
			n = fmt.Sprintf("Arg%d", i)
		}
		for {
			if _, dup := seen[n]; !dup {
				break
			}
			n += "_"
		}
		seen[n] = struct{}{}
		out[i] = n
	}
	return out
}

func tupleName(t abi.Type) string {
	return capitalise(t.TupleRawName)
}

func (gen *generator) collectType(owner string, t abi.Type) error {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy:
		return gen.collectType(owner, *t.Elem)
	case abi.TupleTy:
	default:
		return nil
	}

	name := tupleName(t)
	if name == "" {
		// Descriptors compiled without internalType carry no struct name
		for _, s := range gen.order {
			if s.sig == t.String() {
				return nil
			}
		}
		name = fmt.Sprintf("%sTuple%d", owner, len(gen.order))
		gen.logger.Warn("tuple has no internalType, generating a name",
			zap.String("contract", owner),
			zap.String("tuple", t.String()),
			zap.String("struct", name))
	}
	if existing, ok := gen.structs[name]; ok {
		if existing.sig != t.String() {
			return fmt.Errorf("struct %s is defined as both %s and %s", name, existing.sig, t.String())
		}
		return nil
	}

	s := &tupleStruct{name: name, sig: t.String()}
	for i, elem := range t.TupleElems {
		s.fields = append(s.fields, tupleField{name: abi.ToCamelCase(t.TupleRawNames[i]), typ: *elem})
	}
	gen.structs[name] = s
	gen.order = append(gen.order, s)

	for _, elem := range t.TupleElems {
		if err := gen.collectType(owner, *elem); err != nil {
			return err
		}
	}
	return nil
}

func (gen *generator) collectTuples(d *Descriptor) error {
	for _, m := range d.Members {
		for _, p := range append(append([]Param{}, m.Inputs...), m.Outputs...) {
			if err := gen.collectType(d.Name, p.Type); err != nil {
				return fmt.Errorf("%s: %w", m.Sig, err)
			}
		}
	}
	return nil
}

// The Go type abi decoding produces for t
func (gen *generator) goType(t abi.Type) (string, error) {
	g := gen.g
	switch t.T {
	case abi.IntTy, abi.UintTy:
		prefix := "int"
		if t.T == abi.UintTy {
			prefix = "uint"
		}
		switch t.Size {
		case 8, 16, 32, 64:
			return fmt.Sprintf("%s%d", prefix, t.Size), nil
		}
		return "*" + g.QualifiedGoIdent(bigPackage.Ident("Int")), nil
	case abi.BoolTy:
		return "bool", nil
	case abi.StringTy:
		return "string", nil
	case abi.AddressTy:
		return g.QualifiedGoIdent(commonPackage.Ident("Address")), nil
	case abi.HashTy:
		return g.QualifiedGoIdent(commonPackage.Ident("Hash")), nil
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", t.Size), nil
	case abi.BytesTy:
		return "[]byte", nil
	case abi.FunctionTy:
		return "[24]byte", nil
	case abi.SliceTy:
		elem, err := gen.goType(*t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case abi.ArrayTy:
		elem, err := gen.goType(*t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", t.Size, elem), nil
	case abi.TupleTy:
		name := tupleName(t)
		if _, ok := gen.structs[name]; !ok || name == "" {
			// Unnamed tuples were named during collection; find them by shape
			for _, s := range gen.order {
				if s.sig == t.String() {
					return s.name, nil
				}
			}
			return "", fmt.Errorf("no struct collected for tuple %s", t.String())
		}
		return name, nil
	}
	return "", fmt.Errorf("unsupported abi type %s", t.String())
}

// Go type of an event field; indexed dynamic values only exist as their hash
func (gen *generator) eventFieldType(p Param) (string, error) {
	if p.Indexed {
		switch p.Type.T {
		case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
			return gen.g.QualifiedGoIdent(commonPackage.Ident("Hash")), nil
		}
	}
	return gen.goType(p.Type)
}

func (gen *generator) convert(src string, typ string) string {
	return "*" + gen.g.QualifiedGoIdent(abiPackage.Ident("ConvertType")) + "(" + src + ", new(" + typ + ")).(*" + typ + ")"
}

func (gen *generator) generateStruct(s *tupleStruct) error {
	if err := gen.declare(s.name); err != nil {
		return err
	}
	g := gen.g
	g.P("// ", s.name, " is the Go form of the abi tuple ", s.sig, ".")
	g.P("type ", s.name, " struct {")
	for _, f := range s.fields {
		typ, err := gen.goType(f.typ)
		if err != nil {
			return err
		}
		g.P(f.name, " ", typ)
	}
	g.P("}")
	g.P()
	return nil
}

func (gen *generator) generateBinding(b *Binding) error {
	g := gen.g
	name := b.Descriptor.Name

	for _, ident := range []string{name, name + "MetaData", "Read" + name, "Prepare" + name, "Write" + name, "Submit" + name, "Subscribe" + name} {
		if err := gen.declare(ident); err != nil {
			return err
		}
	}

	g.P("// ", name, "MetaData carries the interface descriptor of the ", name, " contract.")
	g.P("var ", name, "MetaData = &", g.QualifiedGoIdent(bindPackage.Ident("MetaData")), "{")
	g.P("ABI: ", strconv.Quote(b.Descriptor.RawABI), ",")
	g.P("}")
	g.P()

	g.P("// ", name, " binds ", name, "MetaData to the networks it is deployed on.")
	g.P("var ", name, " = ", gen.lib("NewContract"), "(", strconv.Quote(name), ", ", name, "MetaData, ", gen.lib("Deployments"), "{")
	for _, d := range b.Deployments {
		g.P(d.Network, ": ", g.QualifiedGoIdent(commonPackage.Ident("HexToAddress")), "(", strconv.Quote(d.Address.Hex()), "),")
	}
	g.P("})")
	g.P()

	gen.generateUnbound(name)

	for _, m := range b.Descriptor.Members {
		var err error
		switch {
		case m.Kind == KindFunction && m.Mutability == ReadOnly:
			err = gen.generateRead(name, m)
		case m.Kind == KindFunction:
			err = gen.generateWrite(name, m)
		case m.Kind == KindEvent:
			err = gen.generateSubscribe(name, m)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", m.Sig, err)
		}
	}
	return nil
}

func (gen *generator) generateUnbound(name string) {
	g := gen.g
	ctx := g.QualifiedGoIdent(contextPackage.Ident("Context"))
	provider := gen.lib("Provider")
	tx := "*" + g.QualifiedGoIdent(typesPackage.Ident("Transaction"))

	g.P("// Read", name, " invokes a read-only member of ", name, " by name.")
	g.P("func Read", name, "(ctx ", ctx, ", p ", provider, ", member string, cfg ", gen.lib("ReadConfig"), ", args ...interface{}) ([]interface{}, error) {")
	g.P("return ", gen.lib("Read"), "(ctx, p, ", name, ", member, cfg, args...)")
	g.P("}")
	g.P()

	g.P("// Prepare", name, " encodes and validates a call to a mutating member of ", name, " without submitting it.")
	g.P("func Prepare", name, "(ctx ", ctx, ", p ", provider, ", member string, cfg ", gen.lib("WriteConfig"), ", args ...interface{}) (*", gen.lib("PreparedRequest"), ", error) {")
	g.P("return ", gen.lib("Prepare"), "(ctx, p, ", name, ", member, cfg, args...)")
	g.P("}")
	g.P()

	g.P("// Write", name, " submits a transaction invoking a mutating member of ", name, " by name.")
	g.P("func Write", name, "(ctx ", ctx, ", p ", provider, ", member string, cfg ", gen.lib("WriteConfig"), ", args ...interface{}) (", tx, ", error) {")
	g.P("return ", gen.lib("Write"), "(ctx, p, ", name, ", member, cfg, args...)")
	g.P("}")
	g.P()

	g.P("// Submit", name, " submits a request prepared by Prepare", name, ".")
	g.P("func Submit", name, "(ctx ", ctx, ", p ", provider, ", member string, cfg ", gen.lib("WriteConfig"), ", req *", gen.lib("PreparedRequest"), ") (", tx, ", error) {")
	g.P("return ", gen.lib("Submit"), "(ctx, p, ", name, ", member, cfg, req)")
	g.P("}")
	g.P()

	g.P("// Subscribe", name, " registers cb for every log of an event of ", name, ".")
	g.P("func Subscribe", name, "(ctx ", ctx, ", p ", provider, ", member string, cfg ", gen.lib("SubscribeConfig"), ", cb func(*", gen.lib("Event"), ")) (", g.QualifiedGoIdent(eventPackage.Ident("Subscription")), ", error) {")
	g.P("return ", gen.lib("Subscribe"), "(ctx, p, ", name, ", member, cfg, cb)")
	g.P("}")
	g.P()

	gen.accessors += 5
}

// Parameter list and call arguments for a member's inputs
func (gen *generator) inputs(ps []Param) (string, string, error) {
	names := paramNames(ps)
	var decl, call strings.Builder
	for i, p := range ps {
		typ, err := gen.goType(p.Type)
		if err != nil {
			return "", "", err
		}
		decl.WriteString(", " + names[i] + " " + typ)
		call.WriteString(", " + names[i])
	}
	return decl.String(), call.String(), nil
}

func (gen *generator) generateRead(contract string, m *Member) error {
	g := gen.g
	fn := "Read" + contract + capitalise(m.Name)
	if err := gen.declare(fn); err != nil {
		return err
	}
	decl, call, err := gen.inputs(m.Inputs)
	if err != nil {
		return err
	}
	params := "ctx " + g.QualifiedGoIdent(contextPackage.Ident("Context")) + ", p " + gen.lib("Provider") + ", cfg " + gen.lib("ReadConfig") + decl
	invoke := "Read" + contract + "(ctx, p, " + strconv.Quote(m.Name) + ", cfg" + call + ")"

	switch len(m.Outputs) {
	case 0:
		g.P("// ", fn, " calls ", m.Sig, " on ", contract, ".")
		g.P("func ", fn, "(", params, ") error {")
		g.P("_, err := ", invoke)
		g.P("return err")
		g.P("}")

	case 1:
		typ, err := gen.goType(m.Outputs[0].Type)
		if err != nil {
			return err
		}
		g.P("// ", fn, " calls ", m.Sig, " on ", contract, ".")
		g.P("func ", fn, "(", params, ") (", typ, ", error) {")
		g.P("out, err := ", invoke)
		g.P("if err != nil {")
		g.P("return *new(", typ, "), err")
		g.P("}")
		g.P("return ", gen.convert("out[0]", typ), ", nil")
		g.P("}")

	default:
		output := contract + capitalise(m.Name) + "Output"
		if err := gen.declare(output); err != nil {
			return err
		}
		names := fieldNames(m.Outputs)
		types := make([]string, len(m.Outputs))
		g.P("type ", output, " struct {")
		for i, o := range m.Outputs {
			if types[i], err = gen.goType(o.Type); err != nil {
				return err
			}
			g.P(names[i], " ", types[i])
		}
		g.P("}")
		g.P()

		g.P("// ", fn, " calls ", m.Sig, " on ", contract, ".")
		g.P("func ", fn, "(", params, ") (", output, ", error) {")
		g.P("out, err := ", invoke)
		g.P("outstruct := new(", output, ")")
		g.P("if err != nil {")
		g.P("return *outstruct, err")
		g.P("}")
		for i := range m.Outputs {
			g.P("outstruct.", names[i], " = ", gen.convert(fmt.Sprintf("out[%d]", i), types[i]))
		}
		g.P("return *outstruct, nil")
		g.P("}")
	}
	g.P()

	gen.accessors++
	return nil
}

func (gen *generator) generateWrite(contract string, m *Member) error {
	g := gen.g
	ident := contract + capitalise(m.Name)
	for _, fn := range []string{"Write" + ident, "Submit" + ident} {
		if err := gen.declare(fn); err != nil {
			return err
		}
	}
	decl, call, err := gen.inputs(m.Inputs)
	if err != nil {
		return err
	}
	ctx := g.QualifiedGoIdent(contextPackage.Ident("Context"))
	tx := "*" + g.QualifiedGoIdent(typesPackage.Ident("Transaction"))

	g.P("// Write", ident, " submits ", m.Sig, " on ", contract, ". The member is ", m.Mutability.String(), ".")
	g.P("func Write", ident, "(ctx ", ctx, ", p ", gen.lib("Provider"), ", cfg ", gen.lib("WriteConfig"), decl, ") (", tx, ", error) {")
	g.P("return Write", contract, "(ctx, p, ", strconv.Quote(m.Name), ", cfg", call, ")")
	g.P("}")
	g.P()

	g.P("// Submit", ident, " submits a request prepared for ", m.Sig, " on ", contract, ".")
	g.P("func Submit", ident, "(ctx ", ctx, ", p ", gen.lib("Provider"), ", cfg ", gen.lib("WriteConfig"), ", req *", gen.lib("PreparedRequest"), ") (", tx, ", error) {")
	g.P("return Submit", contract, "(ctx, p, ", strconv.Quote(m.Name), ", cfg, req)")
	g.P("}")
	g.P()

	gen.accessors += 2
	return nil
}

func (gen *generator) generateSubscribe(contract string, m *Member) error {
	g := gen.g
	ident := contract + capitalise(m.Name)
	typ := ident + "Event"
	fn := "Subscribe" + ident
	for _, n := range []string{typ, fn} {
		if err := gen.declare(n); err != nil {
			return err
		}
	}

	names := fieldNames(m.Inputs, "Raw")
	types := make([]string, len(m.Inputs))
	g.P("// ", typ, " is a decoded ", m.Sig, " log of ", contract, ".")
	g.P("type ", typ, " struct {")
	for i, in := range m.Inputs {
		var err error
		if types[i], err = gen.eventFieldType(in); err != nil {
			return err
		}
		g.P(names[i], " ", types[i])
	}
	g.P("Raw ", g.QualifiedGoIdent(typesPackage.Ident("Log")))
	g.P("}")
	g.P()

	g.P("// ", fn, " registers cb for every ", m.Sig, " log of ", contract, ".")
	g.P("func ", fn, "(ctx ", g.QualifiedGoIdent(contextPackage.Ident("Context")), ", p ", gen.lib("Provider"), ", cfg ", gen.lib("SubscribeConfig"), ", cb func(*", typ, ")) (", g.QualifiedGoIdent(eventPackage.Ident("Subscription")), ", error) {")
	g.P("return Subscribe", contract, "(ctx, p, ", strconv.Quote(m.Name), ", cfg, func(e *", gen.lib("Event"), ") {")
	g.P("cb(&", typ, "{")
	for i := range m.Inputs {
		g.P(names[i], ": ", gen.convert(fmt.Sprintf("e.Args[%d]", i), types[i]), ",")
	}
	g.P("Raw: e.Raw,")
	g.P("})")
	g.P("})")
	g.P("}")
	g.P()

	gen.accessors++
	return nil
}

// The accessors generated for a member, for inspection
func accessorNames(contract string, m *Member) []string {
	ident := contract + capitalise(m.Name)
	switch {
	case m.Kind == KindFunction && m.Mutability == ReadOnly:
		return []string{"Read" + ident}
	case m.Kind == KindFunction:
		return []string{"Write" + ident, "Submit" + ident}
	case m.Kind == KindEvent:
		return []string{"Subscribe" + ident}
	}
	return nil
}
