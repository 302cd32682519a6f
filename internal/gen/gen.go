// Package gen generates the per-arity source files of the tuple,
// tuplefunc and combine packages.
//
// Go has no variadic type parameters, so every operation that
// must work for "a function of any number of arguments" is written
// out once for each arity from zero up to a fixed maximum. Each
// generated function body is one or two lines long.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/imports"
)

// Header is the first line of every generated file.
const Header = "// Code generated by fngen; DO NOT EDIT."

// MinArity and MaxArity bound the values accepted for Config.MaxArity.
// Below MinArity the generated packages would lack the tuple shapes
// their own code relies on; above MaxArity the type parameter lists
// become unreasonably long.
const (
	MinArity = 2
	MaxArity = 16
)

// ErrUnknownKind is returned by Generate when asked for a kind
// of file that it does not know how to produce.
var ErrUnknownKind = errors.New("unknown kind")

// ErrArity is returned by Generate when Config.MaxArity is out of range.
var ErrArity = errors.New("maximum arity out of range")

// Config holds the parameters of a generation run.
type Config struct {
	// MaxArity holds the largest arity to generate code for.
	MaxArity int
}

// kinds maps each kind of generated file to the function that
// writes it and the name of the file it is conventionally written to.
var kinds = map[string]struct {
	file string
	gen  func(*generator)
}{
	"tuple":     {"tuple_gen.go", genTuple},
	"tuplefunc": {"tuplefunc_gen.go", genTupleFunc},
	"combine":   {"combine_gen.go", genCombine},
	"chain":     {"chain_gen.go", genChain},
}

// Kinds returns the names of all the kinds known to Generate, sorted.
func Kinds() []string {
	ks := make([]string, 0, len(kinds))
	for k := range kinds {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// FileName returns the conventional file name for the given kind.
func FileName(kind string) (string, error) {
	k, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return k.file, nil
}

// Generate returns the formatted Go source for the given kind.
func Generate(kind string, cfg Config) ([]byte, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	if cfg.MaxArity < MinArity || cfg.MaxArity > MaxArity {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrArity, cfg.MaxArity, MinArity, MaxArity)
	}
	g := &generator{
		max: cfg.MaxArity,
	}
	g.printf("%s\n\n", Header)
	k.gen(g)
	src, err := imports.Process(k.file, g.buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot format generated %s code: %w", kind, err)
	}
	return src, nil
}

type generator struct {
	buf bytes.Buffer
	max int
}

func (g *generator) printf(f string, a ...any) {
	fmt.Fprintf(&g.buf, f, a...)
}

// names returns prefix0, prefix1, ... prefix(n-1).
func names(prefix string, n int) []string {
	ns := make([]string, n)
	for i := range ns {
		ns[i] = fmt.Sprint(prefix, i)
	}
	return ns
}

func join(xs []string) string {
	return strings.Join(xs, ", ")
}

// reverse returns a reversed copy of xs.
func reverse(xs []string) []string {
	r := make([]string, len(xs))
	for i, x := range xs {
		r[len(xs)-1-i] = x
	}
	return r
}

// prefixed returns xs with p prepended to each element.
func prefixed(p string, xs []string) []string {
	r := make([]string, len(xs))
	for i, x := range xs {
		r[i] = p + x
	}
	return r
}

// tparams returns a type parameter list holding all the
// given names, or the empty string if there are none.
func tparams(groups ...[]string) string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	if len(all) == 0 {
		return ""
	}
	return "[" + join(all) + " any]"
}

// targs returns a type argument list, or the empty string.
func targs(xs []string) string {
	if len(xs) == 0 {
		return ""
	}
	return "[" + join(xs) + "]"
}

// params returns a parameter list pairing each variable with its type.
func params(vars, types []string) string {
	ps := make([]string, len(vars))
	for i := range vars {
		ps[i] = vars[i] + " " + types[i]
	}
	return join(ps)
}

// results returns a result list for a function signature,
// including its leading space.
func results(types []string) string {
	switch len(types) {
	case 0:
		return ""
	case 1:
		return " " + types[0]
	}
	return " (" + join(types) + ")"
}

// tupleType returns the tuple type holding the given types,
// qualified with q.
func tupleType(q string, types []string) string {
	return fmt.Sprintf("%sT%d%s", q, len(types), targs(types))
}

func funcType(ins []string, out string) string {
	if out == "" {
		return "func(" + join(ins) + ")"
	}
	return "func(" + join(ins) + ") " + out
}

// autoTuple returns the type of a value that can be
// spread into arguments of the given types: nothing but the
// unit tuple for no arguments, the value itself for
// one argument and a tuple of the same arity otherwise.
func autoTuple(types []string) string {
	switch len(types) {
	case 0:
		return "tuple.T0"
	case 1:
		return types[0]
	}
	return tupleType("tuple.", types)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
