// Package tuple is a collection of generic struct types
// that hold a specific number of values, from T0 (the unit type,
// holding nothing) up to TN where N is MaxArity.
//
// As well as holding values, tuples stand in for argument lists:
// a function of N arguments can be treated as a function of a
// single TN argument. Take splits a tuple into its first value and
// the rest; Cons and Append build a larger tuple from a smaller one;
// Flip reverses a tuple. Between them they are enough to implement
// partial application, currying and argument reversal for any arity.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run ../internal/gen/fngen tuple
