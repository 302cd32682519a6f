package gen

import (
	"fmt"
	"strings"
)

const importCombine = `import (
	"sync/atomic"

	"github.com/rogpeppe/fntools/tuple"
	"github.com/rogpeppe/fntools/tuple/tuplefunc"
)
`

// funcN returns the combine.FuncN type taking the given
// argument types and returning r.
func funcN(as []string, r string) string {
	return fmt.Sprintf("Func%d%s", len(as), targs(append(append([]string(nil), as...), r)))
}

// curried returns the type of the curried form of a function
// taking the arguments as[k:] and returning r.
func curried(as []string, k int, r string) string {
	s := r
	for i := len(as) - 1; i >= k; i-- {
		s = "func(" + as[i] + ") " + s
	}
	return s
}

func genCombine(g *generator) {
	g.printf("package combine\n\n")
	g.printf(importCombine)
	for n := 0; n <= g.max; n++ {
		genFuncType(g, n)
		genCurry(g, n)
		genSingle(g, n)
	}
}

// genFuncType writes FuncN and its methods.
func genFuncType(g *generator, n int) {
	as := names("A", n)
	f := funcN(as, "R")
	g.printf("\n")
	g.printf("// Func%d is a function of %d %s.\n", n, n, plural(n, "argument"))
	g.printf("type Func%d%s %s\n\n", n, tparams(as, []string{"R"}), funcType(as, "R"))

	method := func(name, sig, body string) {
		g.printf("// %s is shorthand for %s.\n", name, body)
		g.printf("func (f %s) %s {\n\treturn %s\n}\n\n", f, sig, body)
	}
	method("Chain", "Chain(g func(R) R) "+f, fmt.Sprintf("Chain_%d_1(f, g)", n))
	method("Compose", "Compose(g "+funcType(as, autoTuple(as))+") "+f, fmt.Sprintf("Compose_%d_%d(f, g)", n, n))
	if n > 0 {
		method("Supply", "Supply(a0 A0) "+funcN(as[1:], "R"), fmt.Sprintf("Supply_%d(f, a0)", n))
	}
	method("Flip", "Flip() "+funcN(reverse(as), "R"), fmt.Sprintf("Flip_%d(f)", n))
	method("Curry", "Curry() "+curried(as, 0, "R"), fmt.Sprintf("Curry_%d(f)", n))
	method("Unit", "Unit() "+funcN(as, "tuple.T0"), fmt.Sprintf("Unit_%d(f)", n))
	method("Once", "Once() "+f, fmt.Sprintf("Once_%d(f)", n))
}

// genCurry writes CurryN and the accumulator states it moves through.
// State k holds the first k arguments in a tuple.Tk; supplying the
// argument for state n-1 completes the tuple and calls f.
func genCurry(g *generator, n int) {
	as := names("A", n)
	vs := names("a", n)
	tp := tparams(as, []string{"R"})
	fsig := funcType(as, "R")
	if n == 0 {
		g.printf("// Curry_0 calls f: a function of no arguments has none left to supply.\n")
		g.printf("func Curry_0[R any](f func() R) R {\n\treturn f()\n}\n")
		return
	}
	var calls strings.Builder
	for _, v := range vs {
		calls.WriteString("(" + v + ")")
	}
	g.printf("// Curry_%d returns f in curried form: Curry_%d(f)%s calls f(%s).\n", n, n, calls.String(), join(vs))
	g.printf("func Curry_%d%s(f %s) %s {\n\treturn curry%d_0(f, tuple.T0{})\n}\n", n, tp, fsig, curried(as, 0, "R"), n)
	for k := 0; k < n; k++ {
		g.printf("\n")
		g.printf("func curry%d_%d%s(f %s, acc %s) %s {\n", n, k, tp, fsig, tupleType("tuple.", as[:k]), curried(as, k, "R"))
		g.printf("\treturn func(a A%d) %s {\n", k, curried(as, k+1, "R"))
		if k < n-1 {
			g.printf("\t\treturn curry%d_%d(f, tuple.Append%d(acc, a))\n", n, k+1, k)
		} else {
			g.printf("\t\treturn f(tuple.Append%d(acc, a).T())\n", k)
		}
		g.printf("\t}\n}\n")
	}
}

// genSingle writes the combinators that take a single function:
// Supply, Flip, Untuple, Tuple, Unit and Once.
func genSingle(g *generator, n int) {
	as := names("A", n)
	vs := names("a", n)
	tp := tparams(as, []string{"R"})
	fsig := funcType(as, "R")
	f := funcN(as, "R")
	tt := tupleType("tuple.", as)

	if n > 0 {
		g.printf("\n")
		g.printf("// Supply_%d returns a function of the remaining arguments of f\n// that calls f with a0 as its first argument.\n", n)
		rest := "tuple.T0{}"
		if n > 1 {
			rest = fmt.Sprintf("tuple.MkT%d(%s)", n-1, join(vs[1:]))
		}
		g.printf("func Supply_%d%s(f %s, a0 A0) %s {\n", n, tp, fsig, funcN(as[1:], "R"))
		g.printf("\treturn func(%s) R {\n\t\treturn f(tuple.Cons%d(a0, %s).T())\n\t}\n}\n", params(vs[1:], as[1:]), n-1, rest)
	}

	g.printf("\n")
	if n < 2 {
		g.printf("// Flip_%d returns f unchanged: its arguments are already in reverse order.\n", n)
		g.printf("func Flip_%d%s(f %s) %s {\n\treturn f\n}\n", n, tp, fsig, f)
	} else {
		bs := names("b", n)
		g.printf("// Flip_%d returns a function that takes the arguments of f in reverse order.\n", n)
		g.printf("func Flip_%d%s(f %s) %s {\n", n, tp, fsig, funcN(reverse(as), "R"))
		g.printf("\treturn func(%s) R {\n\t\treturn f(tuple.MkT%d(%s).Flip().T())\n\t}\n}\n", params(bs, reverse(as)), n, join(bs))
	}

	g.printf("\n")
	g.printf("// Untuple_%d returns a function that takes the values of the\n// tuple argument of g as separate arguments.\n", n)
	g.printf("func Untuple_%d%s(g func(%s) R) %s {\n\treturn tuplefunc.FromA_%d(g)\n}\n", n, tp, tt, f, n)
	g.printf("\n")
	g.printf("// Tuple_%d is the inverse of Untuple_%d: it returns a function\n// that takes the arguments of f as a single tuple.\n", n, n)
	g.printf("func Tuple_%d%s(f %s) Func1[%s, R] {\n\treturn tuplefunc.ToA_%d(f)\n}\n", n, tp, fsig, tt, n)

	g.printf("\n")
	g.printf("// Unit_%d returns a function that calls f and discards its result.\n", n)
	g.printf("func Unit_%d%s(f %s) %s {\n", n, tp, fsig, funcN(as, "tuple.T0"))
	g.printf("\treturn func(%s) tuple.T0 {\n\t\tf(%s)\n\t\treturn tuple.T0{}\n\t}\n}\n", params(vs, as), join(vs))

	g.printf("\n")
	g.printf("// Once_%d returns a function that calls f the first time it is called\n// and panics with ErrCalledTwice on every later call.\n", n)
	g.printf("func Once_%d%s(f %s) %s {\n", n, tp, fsig, f)
	g.printf("\tvar called atomic.Bool\n")
	g.printf("\treturn func(%s) R {\n", params(vs, as))
	g.printf("\t\tif called.Swap(true) {\n\t\t\tpanic(ErrCalledTwice)\n\t\t}\n")
	g.printf("\t\tg := f\n\t\tf = nil\n")
	g.printf("\t\treturn g(%s)\n\t}\n}\n", join(vs))
}

func genChain(g *generator) {
	g.printf("package combine\n\n")
	g.printf(importTuple)
	for n := 0; n <= g.max; n++ {
		for m := 0; m <= g.max; m++ {
			genChainNM(g, n, m)
		}
	}
}

// genChainNM writes Chain_n_m and Compose_n_m. The result of
// the first function is spread into the m arguments of the second
// as described by autoTuple.
func genChainNM(g *generator, n, m int) {
	as := names("A", n)
	vs := names("a", n)
	bs := names("B", m)
	fsig := funcType(as, autoTuple(bs))
	gsig := funcType(bs, "R")
	tp := tparams(as, bs, []string{"R"})
	f := funcN(as, "R")

	g.printf("\n")
	switch m {
	case 0:
		g.printf("// Chain_%d_%d returns a function that calls f and then g.\n", n, m)
	case 1:
		g.printf("// Chain_%d_%d returns a function that calls f and then calls g\n// with its result.\n", n, m)
	default:
		g.printf("// Chain_%d_%d returns a function that calls f and then calls g\n// with the values of the tuple it returns.\n", n, m)
	}
	g.printf("func Chain_%d_%d%s(f %s, g %s) %s {\n", n, m, tp, fsig, gsig, f)
	g.printf("\treturn func(%s) R {\n", params(vs, as))
	switch m {
	case 0:
		g.printf("\t\tf(%s)\n\t\treturn g()\n", join(vs))
	case 1:
		g.printf("\t\treturn g(f(%s))\n", join(vs))
	default:
		g.printf("\t\treturn g(f(%s).T())\n", join(vs))
	}
	g.printf("\t}\n}\n")

	g.printf("\n")
	g.printf("// Compose_%d_%d is Chain_%d_%d with its arguments swapped:\n// it returns a function that calls g and then f.\n", n, m, n, m)
	g.printf("func Compose_%d_%d%s(f %s, g %s) %s {\n\treturn Chain_%d_%d(g, f)\n}\n", n, m, tp, gsig, fsig, f, n, m)
}
