package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fntools/tuple"
)

func TestMkAndT(t *testing.T) {
	t3 := tuple.MkT3(1, "two", 3.0)
	qt.Assert(t, qt.Equals(t3, tuple.T3[int, string, float64]{A0: 1, A1: "two", A2: 3.0}))
	a, b, c := t3.T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "two"))
	qt.Assert(t, qt.Equals(c, 3.0))

	qt.Assert(t, qt.Equals(tuple.MkT1("x").T(), "x"))
	qt.Assert(t, qt.Equals(tuple.MkT0(), tuple.T0{}))
}

func TestTake(t *testing.T) {
	head, rest := tuple.MkT1("only").Take()
	qt.Assert(t, qt.Equals(head, "only"))
	qt.Assert(t, qt.Equals(rest, tuple.T0{}))

	head2, rest2 := tuple.MkT2(1, "a").Take()
	qt.Assert(t, qt.Equals(head2, 1))
	qt.Assert(t, qt.Equals(rest2, tuple.MkT1("a")))

	head4, rest4 := tuple.MkT4('a', 'b', "c", 4).Take()
	qt.Assert(t, qt.Equals(head4, 'a'))
	qt.Assert(t, qt.Equals(rest4, tuple.MkT3('b', "c", 4)))
}

func TestTakeRepeatedly(t *testing.T) {
	t8 := tuple.MkT8(0, 1, 2, 3, 4, 5, 6, 7)
	var got []int
	x0, t7 := t8.Take()
	x1, t6 := t7.Take()
	x2, t5 := t6.Take()
	x3, t4 := t5.Take()
	x4, t3 := t4.Take()
	x5, t2 := t3.Take()
	x6, t1 := t2.Take()
	x7, t0 := t1.Take()
	got = append(got, x0, x1, x2, x3, x4, x5, x6, x7)
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2, 3, 4, 5, 6, 7}))
	qt.Assert(t, qt.Equals(t0, tuple.T0{}))
}

func TestConsIsInverseOfTake(t *testing.T) {
	t3 := tuple.MkT3("a", 2, true)
	head, rest := t3.Take()
	qt.Assert(t, qt.Equals(tuple.Cons2(head, rest), t3))

	qt.Assert(t, qt.Equals(tuple.Cons0(5, tuple.T0{}), tuple.MkT1(5)))
	qt.Assert(t, qt.Equals(tuple.Cons1("x", tuple.MkT1(1)), tuple.MkT2("x", 1)))
}

func TestAppend(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Append0(tuple.T0{}, 1), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(tuple.Append1(tuple.MkT1(1), "b"), tuple.MkT2(1, "b")))
	qt.Assert(t, qt.Equals(
		tuple.Append7(tuple.MkT7(0, 1, 2, 3, 4, 5, 6), "seven"),
		tuple.MkT8(0, 1, 2, 3, 4, 5, 6, "seven"),
	))
}

func TestFlip(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.T0{}.Flip(), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.MkT1(1).Flip(), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(tuple.MkT2(1, "a").Flip(), tuple.MkT2("a", 1)))
	qt.Assert(t, qt.Equals(tuple.MkT3('x', 1, "y").Flip(), tuple.MkT3("y", 1, 'x')))
	qt.Assert(t, qt.Equals(
		tuple.MkT8(0, 1, 2, 3, 4, 5, 6, "7").Flip(),
		tuple.MkT8("7", 6, 5, 4, 3, 2, 1, 0),
	))
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	t5 := tuple.MkT5(1, "2", 3.0, '4', false)
	qt.Assert(t, qt.Equals(t5.Flip().Flip(), t5))
	t6 := tuple.MkT6(1, 2, 3, 4, 5, 6)
	qt.Assert(t, qt.Equals(t6.Flip().Flip(), t6))
}

func TestMaxArity(t *testing.T) {
	// T8 is the largest tuple; this is a compile-time check as much as anything.
	var t8 tuple.T8[int, int, int, int, int, int, int, int]
	qt.Assert(t, qt.Equals(tuple.MaxArity, 8))
	qt.Assert(t, qt.Equals(t8.A7, 0))
}

func ExampleT3_Flip() {
	t := tuple.MkT3("a", 1, true)
	fmt.Println(t.Flip().T())
	// Output:
	// true 1 a
}

func ExampleT4_Take() {
	head, rest := tuple.MkT4(1, 2, 3, 4).Take()
	fmt.Println(head, rest)
	// Output:
	// 1 {2 3 4}
}
