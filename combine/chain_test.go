package combine_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fntools/combine"
	"github.com/rogpeppe/fntools/internal/fntest"
	"github.com/rogpeppe/fntools/tuple"
	"github.com/rogpeppe/fntools/tuple/tuplefunc"
)

// overflowingAdd returns a+b along with whether the
// addition overflowed.
func overflowingAdd(a, b int32) (int32, bool) {
	sum := a + b
	over := (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
	return sum, over
}

func TestChainUnary(t *testing.T) {
	var tr fntest.Trace
	f := fntest.Record(&tr, "f", func(a int) int {
		return a + 2
	})
	g := fntest.Record(&tr, "g", func(a int) int {
		return a * 3
	})
	qt.Assert(t, qt.Equals(combine.Chain_1_1(f, g)(4), 18))
	qt.Assert(t, qt.DeepEquals(tr.Calls(), []string{"f", "g"}))
}

func TestChainSpreadsTupleResult(t *testing.T) {
	checkedAdd := combine.Chain_2_2(
		tuplefunc.ToR_2_2(overflowingAdd),
		func(res int32, over bool) *int32 {
			if over {
				return nil
			}
			return &res
		},
	)
	sum := checkedAdd(8, 16)
	qt.Assert(t, qt.Not(qt.IsNil(sum)))
	qt.Assert(t, qt.Equals(*sum, int32(24)))
	qt.Assert(t, qt.IsNil(checkedAdd(math.MaxInt32, 1)))
	qt.Assert(t, qt.IsNil(checkedAdd(math.MinInt32, -1)))
}

func TestChainSingleArgumentIsNotSpread(t *testing.T) {
	pair := func(i int) tuple.T2[int, int] {
		return tuple.MkT2(i, i*i)
	}
	whole := func(p tuple.T2[int, int]) string {
		return fmt.Sprint(p)
	}
	spread := func(a, b int) string {
		return fmt.Sprint(a, b)
	}
	qt.Assert(t, qt.Equals(combine.Chain_1_1(pair, whole)(3), "{3 9}"))
	qt.Assert(t, qt.Equals(combine.Chain_1_2(pair, spread)(3), "3 9"))
}

func TestChainNoArguments(t *testing.T) {
	var tr fntest.Trace
	f := combine.Unit_1(fntest.Record(&tr, "f", strconv.Itoa))
	g := func() string {
		tr.Add("g")
		return "done"
	}
	qt.Assert(t, qt.Equals(combine.Chain_1_0(f, g)(99), "done"))
	qt.Assert(t, qt.DeepEquals(tr.Calls(), []string{"f", "g"}))

	start := combine.Chain_0_1(func() int {
		return 5
	}, strconv.Itoa)
	qt.Assert(t, qt.Equals(start(), "5"))
}

func TestChainUntupled(t *testing.T) {
	split := func(s string) tuple.T2[string, int] {
		return tuple.MkT2(s, len(s))
	}
	join := func(s string, n int) string {
		return s + "/" + strconv.Itoa(n)
	}
	direct := combine.Chain_1_2(split, join)
	viaTuple := combine.Chain_1_1(split, combine.Tuple_2(join))
	qt.Assert(t, fntest.Equivalent(direct, viaTuple, "", "a", "hello"))
}

func TestComposeRunsRightFunctionFirst(t *testing.T) {
	var tr fntest.Trace
	f := fntest.Record(&tr, "f", func(a int) int {
		return a + 2
	})
	g := fntest.Record(&tr, "g", func(a int) int {
		return a * 3
	})
	qt.Assert(t, qt.Equals(combine.Compose_1_1(f, g)(4), 14))
	qt.Assert(t, qt.DeepEquals(tr.Calls(), []string{"g", "f"}))
}

func TestChainComposeDuality(t *testing.T) {
	f := func(a, b int) tuple.T2[int, int] {
		return tuple.MkT2(a+b, a*b)
	}
	g := func(x, y int) int {
		return x - y
	}
	err := quick.CheckEqual(combine.Chain_2_2(f, g), combine.Compose_2_2(g, f), nil)
	qt.Assert(t, qt.IsNil(err))

	h := func(s string) int {
		return len(s)
	}
	k := func(n int) bool {
		return n%2 == 0
	}
	err = quick.CheckEqual(combine.Chain_1_1(h, k), combine.Compose_1_1(k, h), nil)
	qt.Assert(t, qt.IsNil(err))
}

func TestChainAssociativity(t *testing.T) {
	f := func(a int) int {
		return a + 1
	}
	g := func(a int) tuple.T2[int, string] {
		return tuple.MkT2(a*2, strconv.Itoa(a))
	}
	h := func(n int, s string) string {
		return s + ":" + strconv.Itoa(n)
	}
	left := combine.Chain_1_2(combine.Chain_1_1(f, g), h)
	right := combine.Chain_1_1(f, combine.Chain_1_2(g, h))
	qt.Assert(t, qt.IsNil(quick.CheckEqual(left, right, nil)))
}

func TestChainMaxArity(t *testing.T) {
	spread := func(a0, a1, a2, a3, a4, a5, a6, a7 int) tuple.T8[int, int, int, int, int, int, int, int] {
		return tuple.MkT8(a7, a6, a5, a4, a3, a2, a1, a0)
	}
	digits := func(a0, a1, a2, a3, a4, a5, a6, a7 int) string {
		return fmt.Sprint(a0, a1, a2, a3, a4, a5, a6, a7)
	}
	f := combine.Chain_8_8(spread, digits)
	qt.Assert(t, qt.Equals(f(1, 2, 3, 4, 5, 6, 7, 8), "8 7 6 5 4 3 2 1"))
}

func TestChainIsSafeForConcurrentUse(t *testing.T) {
	divmod := tuplefunc.ToR_2_2(func(a, b int) (int, int) {
		return a / b, a % b
	})
	f := combine.Chain_2_2(divmod, func(q, r int) string {
		return fmt.Sprintf("%d r %d", q, r)
	})
	done := make(chan bool)
	for i := range 20 {
		go func() {
			defer func() {
				done <- true
			}()
			if got, want := f(i, 3), fmt.Sprintf("%d r %d", i/3, i%3); got != want {
				t.Errorf("unexpected result; got %q want %q", got, want)
			}
		}()
	}
	for range 20 {
		<-done
	}
}
