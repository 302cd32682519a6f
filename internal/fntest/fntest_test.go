package fntest_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fntools/internal/fntest"
)

type notes map[string]any

func (n notes) note(key string, value any) {
	n[key] = value
}

func TestEquivalent(t *testing.T) {
	double := func(i int) int {
		return i * 2
	}
	add := func(i int) int {
		return i + i
	}
	qt.Assert(t, fntest.Equivalent(double, add, 0, 1, -5, 100))

	square := func(i int) int {
		return i * i
	}
	n := make(notes)
	err := fntest.Equivalent(double, square, 2, 3).Check(n.note)
	qt.Assert(t, qt.ErrorMatches(err, "functions return different results for input 1"))
	qt.Assert(t, qt.DeepEquals(n, notes{
		"input":       3,
		"got result":  6,
		"want result": 9,
	}))
}

func TestEquivalentNoInputs(t *testing.T) {
	c := fntest.Equivalent(strings.ToUpper, strings.ToUpper)
	err := c.Check(make(notes).note)
	qt.Assert(t, qt.ErrorMatches(err, "bad check: no inputs to check with"))
}

func TestDeepEquivalent(t *testing.T) {
	split := func(s string) []string {
		return strings.Split(s, ",")
	}
	fields := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool {
			return r == ','
		})
	}
	qt.Assert(t, fntest.DeepEquivalent(split, fields, "a,b", "x"))

	err := fntest.DeepEquivalent(split, fields, "a,,b").Check(make(notes).note)
	qt.Assert(t, qt.ErrorMatches(err, "functions return different results for input 0"))
}

func TestTrace(t *testing.T) {
	var tr fntest.Trace
	f := fntest.Record(&tr, "f", strings.ToUpper)
	g := fntest.Record(&tr, "g", strings.TrimSpace)
	qt.Assert(t, qt.Equals(f(g(" x ")), "X"))
	qt.Assert(t, qt.DeepEquals(tr.Calls(), []string{"g", "f"}))
	qt.Assert(t, fntest.CalledTimes(&tr, "f", 1))
	qt.Assert(t, fntest.CalledTimes(&tr, "h", 0))

	n := make(notes)
	err := fntest.CalledTimes(&tr, "g", 2).Check(n.note)
	qt.Assert(t, qt.ErrorMatches(err, "unexpected number of calls"))
	qt.Assert(t, qt.Equals(n["got count"], any(1)))

	tr.Reset()
	qt.Assert(t, qt.HasLen(tr.Calls(), 0))
}
