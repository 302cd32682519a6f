package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fntools/internal/gen"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-n", "3", "--output", "x.go", "combine"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(opts.MaxArity, 3))
	qt.Assert(t, qt.Equals(opts.Output, "x.go"))
	qt.Assert(t, qt.Equals(opts.Args.Kind, "combine"))

	opts, err = parseArgs([]string{"tuple"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(opts.MaxArity, 8))
	qt.Assert(t, qt.Equals(opts.Output, ""))
}

func TestParseArgsMissingKind(t *testing.T) {
	_, err := parseArgs(nil)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tuple_gen.go")
	err := run(options{
		MaxArity: 3,
		Output:   out,
		Args: struct {
			Kind string `positional-arg-name:"kind" required:"yes"`
		}{"tuple"},
	})
	qt.Assert(t, qt.IsNil(err))
	data, err := os.ReadFile(out)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(data), gen.Header+"\n")))
	qt.Assert(t, qt.StringContains(string(data), "const MaxArity = 3"))
}

func TestRunUnknownKind(t *testing.T) {
	err := run(options{
		MaxArity: 3,
		Args: struct {
			Kind string `positional-arg-name:"kind" required:"yes"`
		}{"bogus"},
	})
	qt.Assert(t, qt.ErrorIs(err, gen.ErrUnknownKind))
	qt.Assert(t, qt.ErrorMatches(err, `unknown kind "bogus" \(want one of chain, combine, tuple, tuplefunc\)`))
}
