package tuplefunc_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/fntools/tuple"
	"github.com/rogpeppe/fntools/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	c := qt.New(t)
	add3 := tuplefunc.ToA_3(func(x, y, z int) int {
		return x + y + z
	})
	c.Assert(add3(tuple.MkT3(1, 2, 3)), qt.Equals, 6)

	called := false
	f0 := tuplefunc.ToA_0(func() string {
		called = true
		return "ok"
	})
	c.Assert(f0(tuple.T0{}), qt.Equals, "ok")
	c.Assert(called, qt.IsTrue)
}

func TestFromA(t *testing.T) {
	c := qt.New(t)
	sum := tuplefunc.FromA_2(func(p tuple.T2[int, string]) string {
		return fmt.Sprint(p.A0, " ", p.A1)
	})
	c.Assert(sum(1, "x"), qt.Equals, "1 x")

	// A single argument is always wrapped, never unpacked.
	inner := tuple.MkT2(1, 2)
	f1 := tuplefunc.FromA_1(func(p tuple.T1[tuple.T2[int, int]]) tuple.T2[int, int] {
		return p.A0
	})
	c.Assert(f1(inner), qt.Equals, inner)
}

func TestToAFromARoundTrip(t *testing.T) {
	c := qt.New(t)
	f := func(a int, b string, d bool) string {
		return fmt.Sprint(a, b, d)
	}
	g := tuplefunc.FromA_3(tuplefunc.ToA_3(f))
	c.Assert(g(1, "a", true), qt.Equals, f(1, "a", true))
}

func TestToR(t *testing.T) {
	c := qt.New(t)
	atoi := tuplefunc.ToR_1_2(strconv.Atoi)
	r := atoi("12")
	c.Assert(r.A0, qt.Equals, 12)
	c.Assert(r.A1, qt.IsNil)

	r = atoi("x")
	c.Assert(r.A1, qt.ErrorMatches, `strconv.Atoi: parsing "x": invalid syntax`)

	divmod := tuplefunc.ToR_2_2(func(a, b int) (int, int) {
		return a / b, a % b
	})
	c.Assert(divmod(7, 2), qt.Equals, tuple.MkT2(3, 1))
}

func TestToRNoResults(t *testing.T) {
	c := qt.New(t)
	var got []int
	f := tuplefunc.ToR_1_0(func(i int) {
		got = append(got, i)
	})
	c.Assert(f(3), qt.Equals, tuple.T0{})
	c.Assert(got, qt.DeepEquals, []int{3})

	g := tuplefunc.FromR_1_0(f)
	g(4)
	c.Assert(got, qt.DeepEquals, []int{3, 4})
}

func TestFromR(t *testing.T) {
	c := qt.New(t)
	errBad := errors.New("bad")
	f := tuplefunc.FromR_0_3(func() tuple.T3[string, int, error] {
		return tuple.MkT3("a", 1, errBad)
	})
	s, i, err := f()
	c.Assert(s, qt.Equals, "a")
	c.Assert(i, qt.Equals, 1)
	c.Assert(err, qt.Equals, errBad)
}

func TestToRFromRRoundTrip(t *testing.T) {
	c := qt.New(t)
	swap := func(a, b string) (string, string) {
		return b, a
	}
	g := tuplefunc.FromR_2_2(tuplefunc.ToR_2_2(swap))
	x, y := g("a", "b")
	c.Assert(x, qt.Equals, "b")
	c.Assert(y, qt.Equals, "a")
}

func Example_toR() {
	parse := tuplefunc.ToR_1_2(strconv.Atoi)
	fmt.Println(parse("42"))
	// Output:
	// {42 <nil>}
}
