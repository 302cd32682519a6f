// Package tuplefunc adapts the argument lists and result lists of Go
// functions to and from the tuple types. The A conversions turn a function
// of several arguments into one taking a single tuple, and back; the R
// conversions turn a function with several results into one returning a
// single tuple, and back. The combine package relies on them to treat
// functions of any arity up to tuple.MaxArity the same way.
//
// The names of the functions in this package match the following regular expression:
//
//	(To|From)(A|R)_[0-9]+(_[0-9]+)?
//
// The letter represents the aspect of the function that's being converted:
//
//	A - argument parameters
//	R - return parameters
//
// The first number is the number of argument parameters;
// the second number, present for R conversions only, is the number of return parameters.
//
// So, for example:
//
//	ToR_1_3
//
// converts from (for some types A, R0, R1 and R2)
//
//	func(A) (R0, R1, R2)
//
// to:
//
//	func(A) tuple.T3[R0, R1, R2]
//
// and FromR_1_3 converts back again. A function with no results
// converts to one returning tuple.T0. There are no R conversions
// for functions with a single result: the result is already a
// single value.
//
// Similarly ToA_2 converts
//
//	func(A0, A1) R
//
// to:
//
//	func(tuple.T2[A0, A1]) R
package tuplefunc

//go:generate go run ../../internal/gen/fngen tuplefunc
