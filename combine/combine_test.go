package combine_test

import (
	"fmt"
	"strconv"
	"sync"
	"testing"
	"testing/quick"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fntools/combine"
	"github.com/rogpeppe/fntools/internal/fntest"
	"github.com/rogpeppe/fntools/tuple"
)

func format3(a string, b int, c rune) string {
	return fmt.Sprintf("%s%d%c", a, b, c)
}

func TestCurry(t *testing.T) {
	add := func(a, b, c int) int {
		return a + b + c
	}
	qt.Assert(t, qt.Equals(combine.Curry_3(add)(1)(2)(3), 6))

	// Supplying fewer than all the arguments yields another
	// callable, not a result.
	pending := combine.Curry_3(add)(1)(2)
	var _ func(int) int = pending
	qt.Assert(t, qt.Equals(pending(3), 6))
	qt.Assert(t, qt.Equals(pending(10), 13))
}

func TestCurryCallsOnlyWhenSaturated(t *testing.T) {
	var tr fntest.Trace
	f := combine.Untuple_3(fntest.Record(&tr, "f", combine.Tuple_3(format3)))
	c := combine.Curry_3(f)("x")(1)
	qt.Assert(t, fntest.CalledTimes(&tr, "f", 0))
	qt.Assert(t, qt.Equals(c('y'), "x1y"))
	qt.Assert(t, fntest.CalledTimes(&tr, "f", 1))
}

func TestCurryBranches(t *testing.T) {
	c := combine.Curry_3(format3)("a")
	left := c(1)
	right := c(2)
	qt.Assert(t, qt.Equals(left('l'), "a1l"))
	qt.Assert(t, qt.Equals(right('r'), "a2r"))
	qt.Assert(t, qt.Equals(left('L'), "a1L"))
}

func TestCurryEquivalence(t *testing.T) {
	f := func(a int, b string, c bool) string {
		return fmt.Sprint(a, b, c)
	}
	curried := func(a int, b string, c bool) string {
		return combine.Curry_3(f)(a)(b)(c)
	}
	qt.Assert(t, qt.IsNil(quick.CheckEqual(curried, f, nil)))
}

func TestCurryNoArguments(t *testing.T) {
	calls := 0
	r := combine.Curry_0(func() string {
		calls++
		return "now"
	})
	qt.Assert(t, qt.Equals(r, "now"))
	qt.Assert(t, qt.Equals(calls, 1))
}

func TestSupply(t *testing.T) {
	f2 := combine.Supply_3(format3, "hello")
	var _ combine.Func2[int, rune, string] = f2
	qt.Assert(t, qt.Equals(f2(1, '!'), "hello1!"))

	f1 := combine.Supply_2(f2, 2)
	qt.Assert(t, qt.Equals(f1('?'), "hello2?"))

	f0 := combine.Supply_1(f1, '.')
	qt.Assert(t, qt.Equals(f0(), "hello2."))
}

func TestSupplySaturation(t *testing.T) {
	f := func(a int, b string, c bool) string {
		return fmt.Sprint(a, b, c)
	}
	supplied := func(a int, b string, c bool) string {
		return combine.Supply_1(combine.Supply_2(combine.Supply_3(f, a), b), c)()
	}
	qt.Assert(t, qt.IsNil(quick.CheckEqual(supplied, f, nil)))
}

func TestFlip(t *testing.T) {
	flipped := combine.Flip_3(format3)
	qt.Assert(t, qt.Equals(flipped('x', 1, "y"), "y1x"))

	sub := func(a, b int) int {
		return a - b
	}
	qt.Assert(t, qt.Equals(combine.Flip_2(sub)(1, 10), 9))
	qt.Assert(t, qt.Equals(combine.Flip_1(strconv.Itoa)(7), "7"))
}

func TestFlipInvolution(t *testing.T) {
	f := func(a int, b string, c bool, d int8) string {
		return fmt.Sprint(a, b, c, d)
	}
	flipped := (func(int, string, bool, int8) string)(combine.Flip_4(combine.Flip_4(f)))
	qt.Assert(t, qt.IsNil(quick.CheckEqual(flipped, f, nil)))
}

func TestUntupleTuple(t *testing.T) {
	g := func(p tuple.T2[string, int]) string {
		return p.A0 + strconv.Itoa(p.A1)
	}
	flat := combine.Untuple_2(g)
	qt.Assert(t, qt.Equals(flat("a", 1), "a1"))

	back := combine.Tuple_2(flat)
	qt.Assert(t, fntest.Equivalent(back, g,
		tuple.MkT2("", 0),
		tuple.MkT2("x", -3),
	))

	tupled := combine.Tuple_3(format3)
	qt.Assert(t, qt.Equals(tupled(tuple.MkT3("z", 26, '!')), "z26!"))
}

func TestUnit(t *testing.T) {
	var got []string
	f := combine.Unit_2(func(a, b string) int {
		got = append(got, a+b)
		return len(got)
	})
	qt.Assert(t, qt.Equals(f("a", "b"), tuple.T0{}))
	qt.Assert(t, qt.DeepEquals(got, []string{"ab"}))
}

func TestOnce(t *testing.T) {
	calls := 0
	f := combine.Once_2(func(a, b int) int {
		calls++
		return a * b
	})
	qt.Assert(t, qt.Equals(f(3, 4), 12))
	qt.Assert(t, qt.PanicMatches(func() {
		f(3, 4)
	}, "combine: consume-once function called more than once"))
	qt.Assert(t, qt.Equals(calls, 1))
}

func TestOncePropagatesThroughChain(t *testing.T) {
	f := combine.Once_1(func(i int) int {
		return i * 2
	})
	c := combine.Chain_1_1(f, strconv.Itoa)
	qt.Assert(t, qt.Equals(c(2), "4"))
	qt.Assert(t, qt.PanicMatches(func() {
		c(3)
	}, "combine: consume-once function called more than once"))
}

func TestOnceConcurrent(t *testing.T) {
	var tr fntest.Trace
	f := combine.Once_1(fntest.Record(&tr, "f", func(i int) int {
		return i
	}))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		panics int
	)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					mu.Lock()
					panics++
					mu.Unlock()
				}
			}()
			f(i)
		}()
	}
	wg.Wait()
	qt.Assert(t, fntest.CalledTimes(&tr, "f", 1))
	qt.Assert(t, qt.Equals(panics, 9))
}

func TestMethods(t *testing.T) {
	addTwo := combine.Func1[int, int](func(a int) int {
		return a + 2
	})
	addThree := func(a int) int {
		return a + 3
	}
	addEight := addTwo.Chain(addThree).Chain(addThree)
	qt.Assert(t, qt.Equals(addEight(4), 12))

	double := func(a int) int {
		return a * 2
	}
	qt.Assert(t, qt.Equals(addTwo.Compose(double)(5), 12))

	format := combine.Func3[string, int, rune, string](format3)
	qt.Assert(t, qt.Equals(format.Flip()('c', 17, "hello, "), "hello, 17c"))
	qt.Assert(t, qt.Equals(format.Supply("a").Supply(8).Supply('z')(), "a8z"))
	qt.Assert(t, qt.Equals(format.Curry()("b")(9)('y'), "b9y"))
	qt.Assert(t, qt.Equals(combine.Tuple_3(format)(tuple.MkT3("c", 0, 'x')), "c0x"))
	qt.Assert(t, qt.Equals(format.Unit()("d", 1, 'w'), tuple.T0{}))

	sub := combine.Func2[int, int, int](func(a, b int) int {
		return a - b
	})
	swap := func(a, b int) tuple.T2[int, int] {
		return tuple.MkT2(b, a)
	}
	qt.Assert(t, qt.Equals(sub.Compose(swap)(1, 5), 4))

	once := sub.Once()
	qt.Assert(t, qt.Equals(once(5, 1), 4))
	qt.Assert(t, qt.PanicMatches(func() {
		once(5, 1)
	}, "combine: consume-once function called more than once"))
}
