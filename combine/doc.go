// Package combine builds new functions out of existing ones:
// sequencing (Chain, Compose), partial application (Supply, Curry),
// argument reversal (Flip) and adapting between argument shapes
// (Untuple, Tuple, Unit).
//
// Every combinator is provided for functions of up to tuple.MaxArity
// arguments. The number of arguments is part of the name: Flip_3
// flips a function of three arguments. Functions that combine two
// functions carry two numbers: the first is the number of arguments
// of the resulting function, the second the number of arguments of
// the function that receives the intermediate value. For example
//
//	Chain_2_3(f, g)
//
// calls a two-argument f and passes its result to a three-argument g.
//
// # Passing results to arguments
//
// A function's single result becomes the arguments of the next
// function according to how many arguments that function takes:
//
//   - none: the result must be the unit tuple, tuple.T0;
//   - one: the result is passed unchanged, even if it is itself a tuple;
//   - more than one: the result must be a tuple of that size, and its
//     values are passed in order.
//
// These rules are enforced by the type checker: a mismatched pair of
// functions does not compile. A Go function with several results can be
// adapted to return a tuple with tuplefunc.ToR_N_M.
//
// # Methods
//
// The FuncN types carry methods that make it possible to combine
// functions by method chaining:
//
//	f := combine.Func3[int, string, bool, string](format)
//	g := f.Flip().Supply(true).Supply("x")
//
// Methods cannot introduce new type parameters, so methods are only
// provided for the combinations whose result type is determined by
// the receiver. Chain and Compose methods take a function that leaves
// the types unchanged; use the Chain_N_M and Compose_N_M functions
// for the general case. There are no separate methods for spreading
// a tuple result: Compose already takes a function returning the
// receiver's arguments as a tuple, and Chain_N_M with M of two or more
// spreads the tuple into g. There is no Tuple method either; use Tuple_N.
//
// # Calling functions more than once
//
// Nothing in this package holds state of its own: a combined function
// can be called as many times, and from as many goroutines, as the
// functions it was built from. The Once_N functions (and the Once method)
// mark a function as callable only once, so that a combination that
// includes it will panic with ErrCalledTwice if called again.
package combine

//go:generate go run ../internal/gen/fngen combine
//go:generate go run ../internal/gen/fngen chain
