// Package fn holds combinators for functions of at most two
// arguments, written out by hand.
//
// Everything here can also be done with the arity-generic
// combine package, and behaves identically; fn exists for
// callers who only ever deal with small functions and prefer
// short names over the arity-numbered ones.
package fn

import "github.com/rogpeppe/fntools/tuple"

// Unit is the type of a result that carries no information.
type Unit = tuple.T0

// Iden is the left and right identity of Chain and Compose:
// it returns its argument.
func Iden[A any](a A) A {
	return a
}

// Chain is left to right function composition:
// Chain(f, g)(x) == g(f(x)).
func Chain[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose is right to left function composition:
// Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return Chain(g, f)
}

// FlipArgs returns a function that takes the two
// arguments of f in the opposite order.
func FlipArgs[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Product runs f and g side by side: Product(f, g)(a, x)
// returns the pair (f(a), g(x)).
func Product[A, B, X, Y any](f func(A) B, g func(X) Y) func(A, X) tuple.T2[B, Y] {
	return func(a A, x X) tuple.T2[B, Y] {
		return tuple.MkT2(f(a), g(x))
	}
}

// Curry takes a two argument function and returns a function that accepts
// the first argument and then returns a function that accepts the second
// argument.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return Supply(f, a)
	}
}

// Uncurry inverts the Curry operation.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Supply fixes the first argument of f to a.
func Supply[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Supply1 fixes the only argument of f to a, returning
// a function that needs no arguments.
func Supply1[A, B any](f func(A) B, a A) func() B {
	return func() B {
		return f(a)
	}
}

// Discard returns a function that calls f and drops its result.
func Discard[A, B any](f func(A) B) func(A) Unit {
	return func(a A) Unit {
		f(a)
		return Unit{}
	}
}
