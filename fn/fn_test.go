package fn

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/rogpeppe/fntools/combine"
	"github.com/rogpeppe/fntools/tuple"
)

func TestIdenIsIdentityOfChain(t *testing.T) {
	f := func(x int) int {
		return x*7 - 3
	}

	err := quick.CheckEqual(Chain(Iden[int], f), f, nil)
	require.NoError(t, err)

	err = quick.CheckEqual(Chain(f, Iden[int]), f, nil)
	require.NoError(t, err)
}

func TestChainAgreesWithCombine(t *testing.T) {
	f := func(s string) int {
		return len(s)
	}
	g := strconv.Itoa

	err := quick.CheckEqual(Chain(f, g), (func(string) string)(combine.Chain_1_1(f, g)), nil)
	require.NoError(t, err)

	err = quick.CheckEqual(Compose(g, f), (func(string) string)(combine.Compose_1_1(g, f)), nil)
	require.NoError(t, err)
}

func TestComposeOrder(t *testing.T) {
	var calls []string
	f := func(x int) int {
		calls = append(calls, "f")
		return x + 2
	}
	g := func(x int) int {
		calls = append(calls, "g")
		return x * 3
	}

	require.Equal(t, 14, Compose(f, g)(4))
	require.Equal(t, []string{"g", "f"}, calls)
}

func TestFlipArgs(t *testing.T) {
	sub := func(a, b int) int {
		return a - b
	}

	require.Equal(t, 9, FlipArgs(sub)(1, 10))

	err := quick.CheckEqual(FlipArgs(sub), (func(int, int) int)(combine.Flip_2(sub)), nil)
	require.NoError(t, err)

	err = quick.CheckEqual(FlipArgs(FlipArgs(sub)), sub, nil)
	require.NoError(t, err)
}

func TestProduct(t *testing.T) {
	p := Product(strconv.Itoa, func(s string) int {
		return len(s)
	})

	require.Equal(t, tuple.MkT2("12", 3), p(12, "abc"))
}

func TestCurryUncurry(t *testing.T) {
	concat := func(s string, n int) string {
		return s + strconv.Itoa(n)
	}

	require.Equal(t, "a1", Curry(concat)("a")(1))

	curried := func(s string, n int) string {
		return Curry(concat)(s)(n)
	}
	err := quick.CheckEqual(curried, concat, nil)
	require.NoError(t, err)

	fromCombine := func(s string, n int) string {
		return combine.Curry_2(concat)(s)(n)
	}
	err = quick.CheckEqual(curried, fromCombine, nil)
	require.NoError(t, err)

	err = quick.CheckEqual(Uncurry(Curry(concat)), concat, nil)
	require.NoError(t, err)
}

func TestSupply(t *testing.T) {
	concat := func(s string, n int) string {
		return s + strconv.Itoa(n)
	}

	require.Equal(t, "x5", Supply(concat, "x")(5))
	require.Equal(t, combine.Supply_2(concat, "x")(5), Supply(concat, "x")(5))

	require.Equal(t, "7", Supply1(strconv.Itoa, 7)())
}

func TestDiscard(t *testing.T) {
	n := 0
	f := Discard(func(x int) int {
		n += x
		return n
	})

	require.Equal(t, Unit{}, f(3))
	require.Equal(t, combine.Unit_1(strconv.Itoa)(3), f(4))
	require.Equal(t, 7, n)
}
