package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/fntools/internal/gen"
)

// checkedIn holds the location of each generated file relative
// to this package's directory.
var checkedIn = map[string]string{
	"tuple":     "../../tuple",
	"tuplefunc": "../../tuple/tuplefunc",
	"combine":   "../../combine",
	"chain":     "../../combine",
}

func TestKinds(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(gen.Kinds(), []string{"chain", "combine", "tuple", "tuplefunc"}))
	for _, kind := range gen.Kinds() {
		name, err := gen.FileName(kind)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(name, kind+"_gen.go"))
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := gen.Generate("other", gen.Config{MaxArity: 8})
	qt.Assert(t, qt.ErrorIs(err, gen.ErrUnknownKind))
	qt.Assert(t, qt.ErrorMatches(err, `unknown kind "other"`))

	_, err = gen.FileName("other")
	qt.Assert(t, qt.ErrorIs(err, gen.ErrUnknownKind))

	_, err = gen.Generate("tuple", gen.Config{MaxArity: gen.MinArity - 1})
	qt.Assert(t, qt.ErrorIs(err, gen.ErrArity))

	_, err = gen.Generate("tuple", gen.Config{MaxArity: gen.MaxArity + 1})
	qt.Assert(t, qt.ErrorIs(err, gen.ErrArity))
	qt.Assert(t, qt.ErrorMatches(err, `maximum arity out of range: 17 not in \[2, 16\]`))
}

func TestGenerateTupleDecls(t *testing.T) {
	src, err := gen.Generate("tuple", gen.Config{MaxArity: 2})
	qt.Assert(t, qt.IsNil(err))
	got := declNames(t, "tuple_gen.go", src)
	want := sorted(
		"MaxArity",
		"T0", "MkT0", "T0.Flip",
		"T1", "MkT1", "T1.T", "T1.Take", "T1.Flip",
		"T2", "MkT2", "T2.T", "T2.Take", "T2.Flip",
		"Append0", "Cons0",
		"Append1", "Cons1",
	)
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestGenerateChainDecls(t *testing.T) {
	src, err := gen.Generate("chain", gen.Config{MaxArity: 3})
	qt.Assert(t, qt.IsNil(err))
	got := declNames(t, "chain_gen.go", src)
	var want []string
	for n := 0; n <= 3; n++ {
		for m := 0; m <= 3; m++ {
			suffix := "_" + strconv.Itoa(n) + "_" + strconv.Itoa(m)
			want = append(want, "Chain"+suffix, "Compose"+suffix)
		}
	}
	qt.Assert(t, qt.DeepEquals(got, sorted(want...)))
}

func TestGenerateCombineDecls(t *testing.T) {
	src, err := gen.Generate("combine", gen.Config{MaxArity: 2})
	qt.Assert(t, qt.IsNil(err))
	got := declNames(t, "combine_gen.go", src)
	for _, name := range []string{
		"Func0", "Func0.Chain", "Func0.Curry", "Curry_0", "Once_0",
		"Func1.Supply", "Supply_1", "curry1_0",
		"Func2", "Func2.Flip", "Flip_2", "Untuple_2", "Tuple_2", "Unit_2",
		"curry2_0", "curry2_1",
	} {
		qt.Check(t, qt.SliceContains(got, name))
	}
	// A function of no arguments has nothing to supply.
	qt.Assert(t, qt.Not(qt.SliceContains(got, "Func0.Supply")))
	qt.Assert(t, qt.Not(qt.SliceContains(got, "Supply_0")))
	// A method of FuncN must not return a FuncN instantiated with a
	// tuple of its own type parameters: that is an instantiation cycle.
	qt.Assert(t, qt.Not(qt.SliceContains(got, "Func1.Tuple")))
	qt.Assert(t, qt.Not(qt.SliceContains(got, "Func2.Tuple")))
}

func TestGenerateHeader(t *testing.T) {
	for _, kind := range gen.Kinds() {
		src, err := gen.Generate(kind, gen.Config{MaxArity: gen.MinArity})
		qt.Assert(t, qt.IsNil(err), qt.Commentf("kind %s", kind))
		qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(src), gen.Header+"\n")))
	}
}

// TestCheckedInFilesAreCurrent checks that the generated files in the
// repository are identical to a fresh run of the generator.
// If it fails, run go generate ./...
func TestCheckedInFilesAreCurrent(t *testing.T) {
	for _, kind := range gen.Kinds() {
		t.Run(kind, func(t *testing.T) {
			name, err := gen.FileName(kind)
			qt.Assert(t, qt.IsNil(err))
			want, err := os.ReadFile(filepath.Join(checkedIn[kind], name))
			qt.Assert(t, qt.IsNil(err))
			got, err := gen.Generate(kind, gen.Config{MaxArity: 8})
			qt.Assert(t, qt.IsNil(err))
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Fatalf("generated file differs (-checked in +generated):\n%s", diff)
			}
		})
	}
}

// declNames parses src and returns the sorted names of all
// its top level declarations. Methods are named Type.Method.
func declNames(t *testing.T, filename string, src []byte) []string {
	f, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.SkipObjectResolution)
	qt.Assert(t, qt.IsNil(err))
	var names []string
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil {
				name = recvTypeName(decl.Recv.List[0].Type) + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, spec.Name.Name)
				case *ast.ValueSpec:
					for _, id := range spec.Names {
						names = append(names, id.Name)
					}
				}
			}
		}
	}
	sort.Strings(names)
	return names
}

func recvTypeName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.IndexExpr:
		return recvTypeName(x.X)
	case *ast.IndexListExpr:
		return recvTypeName(x.X)
	case *ast.StarExpr:
		return recvTypeName(x.X)
	}
	return "?"
}

func sorted(xs ...string) []string {
	sort.Strings(xs)
	return xs
}
