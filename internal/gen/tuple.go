package gen

func genTuple(g *generator) {
	g.printf("package tuple\n\n")
	g.printf("// MaxArity holds the size of the largest tuple type defined by this package.\n")
	g.printf("const MaxArity = %d\n", g.max)
	for n := 0; n <= g.max; n++ {
		genTupleType(g, n)
	}
	for n := 0; n < g.max; n++ {
		as := names("A", n+1)
		t := tupleType("", as)
		g.printf("\n")
		g.printf("// Append%d returns a T%d holding the values of t followed by a.\n", n, n+1)
		g.printf("func Append%d%s(t %s, a A%d) %s {\n\treturn %s{%s}\n}\n",
			n, tparams(as), tupleType("", as[:n]), n, t,
			t, join(append(prefixed("t.", as[:n]), "a")),
		)
		g.printf("\n")
		g.printf("// Cons%d returns a T%d holding a0 followed by the values of t.\n", n, n+1)
		g.printf("func Cons%d%s(a0 A0, t %s) %s {\n\treturn %s{%s}\n}\n",
			n, tparams(as), tupleType("", as[1:]), t,
			t, join(append([]string{"a0"}, prefixed("t.", names("A", n))...)),
		)
	}
}

func genTupleType(g *generator, n int) {
	as := names("A", n)
	vs := names("a", n)
	t := tupleType("", as)
	g.printf("\n")
	if n == 0 {
		g.printf("// T0 holds a tuple of zero values. It is the unit type:\n// T0{} is its only value.\n")
		g.printf("type T0 struct{}\n\n")
		g.printf("// MkT0 returns the T0 value.\n")
		g.printf("func MkT0() T0 {\n\treturn T0{}\n}\n")
	} else {
		g.printf("// T%d holds a tuple of %d %s.\n", n, n, plural(n, "value"))
		g.printf("type T%d%s struct {\n", n, tparams(as))
		for _, a := range as {
			g.printf("\t%s %s\n", a, a)
		}
		g.printf("}\n\n")
		g.printf("// MkT%d returns a T%d holding the given values.\n", n, n)
		g.printf("func MkT%d%s(%s) %s {\n\treturn %s{%s}\n}\n\n", n, tparams(as), params(vs, as), t, t, join(vs))
		g.printf("// T returns the values held in t.\n")
		g.printf("func (t %s) T()%s {\n\treturn %s\n}\n\n", t, results(as), join(prefixed("t.", as)))
		g.printf("// Take returns the first value of t and a tuple holding the rest.\n")
		rest := tupleType("", as[1:])
		restv := "T0{}"
		if n > 1 {
			restv = rest + "{" + join(prefixed("t.", as[1:])) + "}"
		}
		g.printf("func (t %s) Take() (A0, %s) {\n\treturn t.A0, %s\n}\n", t, rest, restv)
	}
	g.printf("\n")
	if n < 2 {
		g.printf("// Flip returns t unchanged.\n")
		g.printf("func (t %s) Flip() %s {\n\treturn t\n}\n", t, t)
		return
	}
	g.printf("// Flip returns t with its values in reverse order.\n")
	g.printf("func (t %s) Flip() %s {\n\ta0, rest := t.Take()\n\treturn Append%d(rest.Flip(), a0)\n}\n",
		t, tupleType("", reverse(as)), n-1,
	)
}
