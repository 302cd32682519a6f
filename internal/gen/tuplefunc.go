package gen

import "fmt"

const importTuple = "import \"github.com/rogpeppe/fntools/tuple\"\n"

func genTupleFunc(g *generator) {
	g.printf("package tuplefunc\n\n")
	g.printf(importTuple)
	for n := 0; n <= g.max; n++ {
		as := names("A", n)
		vs := names("a", n)
		tt := tupleType("tuple.", as)
		g.printf("\n")
		g.printf("// ToA_%d returns a function that takes the arguments of f as a single tuple.\n", n)
		g.printf("func ToA_%d%s(f %s) func(%s) R {\n", n, tparams(as, []string{"R"}), funcType(as, "R"), tt)
		if n == 0 {
			g.printf("\treturn func(tuple.T0) R {\n\t\treturn f()\n\t}\n}\n")
		} else {
			g.printf("\treturn func(t %s) R {\n\t\treturn f(t.T())\n\t}\n}\n", tt)
		}
		g.printf("\n")
		g.printf("// FromA_%d is the inverse of ToA_%d.\n", n, n)
		g.printf("func FromA_%d%s(f func(%s) R) %s {\n", n, tparams(as, []string{"R"}), tt, funcType(as, "R"))
		mk := "tuple.T0{}"
		if n > 0 {
			mk = fmt.Sprintf("tuple.MkT%d(%s)", n, join(vs))
		}
		g.printf("\treturn func(%s) R {\n\t\treturn f(%s)\n\t}\n}\n", params(vs, as), mk)
	}
	for n := 0; n <= g.max; n++ {
		for _, m := range resultArities(g.max) {
			genToR(g, n, m)
		}
	}
}

// resultArities returns the result counts that ToR and FromR
// are generated for. A single result needs no conversion.
func resultArities(max int) []int {
	ms := []int{0}
	for m := 2; m <= max; m++ {
		ms = append(ms, m)
	}
	return ms
}

func genToR(g *generator, n, m int) {
	as := names("A", n)
	vs := names("a", n)
	rs := names("R", m)
	rt := tupleType("tuple.", rs)
	orig := "func(" + join(as) + ")" + results(rs)
	g.printf("\n")
	if m == 0 {
		g.printf("// ToR_%d_%d returns a function that calls f and returns the unit tuple.\n", n, m)
	} else {
		g.printf("// ToR_%d_%d returns a function that calls f and returns its results as a tuple.\n", n, m)
	}
	g.printf("func ToR_%d_%d%s(f %s) %s {\n", n, m, tparams(as, rs), orig, funcType(as, rt))
	g.printf("\treturn func(%s) %s {\n", params(vs, as), rt)
	if m == 0 {
		g.printf("\t\tf(%s)\n\t\treturn tuple.T0{}\n", join(vs))
	} else {
		g.printf("\t\treturn tuple.MkT%d%s(f(%s))\n", m, targs(rs), join(vs))
	}
	g.printf("\t}\n}\n")
	g.printf("\n")
	g.printf("// FromR_%d_%d is the inverse of ToR_%d_%d.\n", n, m, n, m)
	g.printf("func FromR_%d_%d%s(f %s) %s {\n", n, m, tparams(as, rs), funcType(as, rt), orig)
	if m == 0 {
		g.printf("\treturn func(%s) {\n\t\tf(%s)\n\t}\n}\n", params(vs, as), join(vs))
	} else {
		g.printf("\treturn func(%s)%s {\n\t\treturn f(%s).T()\n\t}\n}\n", params(vs, as), results(rs), join(vs))
	}
}
