package combine_test

import (
	"fmt"
	"math"

	"github.com/rogpeppe/fntools/combine"
	"github.com/rogpeppe/fntools/tuple/tuplefunc"
)

func Example_chain() {
	addTwo := func(a int) int {
		return a + 2
	}
	triple := func(a int) int {
		return a * 3
	}
	fmt.Println(combine.Chain_1_1(addTwo, triple)(4))
	// Output:
	// 18
}

func Example_checkedAdd() {
	checkedAdd := combine.Chain_2_2(
		tuplefunc.ToR_2_2(overflowingAdd),
		func(sum int32, over bool) string {
			if over {
				return "overflow"
			}
			return fmt.Sprint(sum)
		},
	)
	fmt.Println(checkedAdd(8, 16))
	fmt.Println(checkedAdd(math.MaxInt32, 1))
	// Output:
	// 24
	// overflow
}

func Example_curry() {
	add := func(a, b, c int) int {
		return a + b + c
	}
	addOneTwo := combine.Curry_3(add)(1)(2)
	fmt.Println(addOneTwo(3))
	// Output:
	// 6
}

func Example_flip() {
	format := func(a string, b int, c rune) string {
		return fmt.Sprintf("%s%d%c", a, b, c)
	}
	fmt.Println(combine.Flip_3(format)('c', 17, "hello, "))
	// Output:
	// hello, 17c
}

func ExampleFunc3_Supply() {
	format := combine.Func3[string, int, rune, string](func(a string, b int, c rune) string {
		return fmt.Sprintf("%s%d%c", a, b, c)
	})
	fmt.Println(format.Supply("hello, ").Supply(17)('c'))
	// Output:
	// hello, 17c
}
