// Package fntest provides quicktest checkers and helpers
// for testing functions that are built out of other functions.
package fntest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

// Equivalent returns a checker that checks that got and want
// return equal results when called with each of the given inputs.
//
// Functions of several arguments can be compared by converting
// them to take a single tuple, for example with combine.Tuple_3.
func Equivalent[A any, R comparable](got, want func(A) R, inputs ...A) qt.Checker {
	return &equivalentChecker[A, R]{
		got:    got,
		want:   want,
		inputs: inputs,
		equal: func(x, y R) bool {
			return x == y
		},
	}
}

// DeepEquivalent is like Equivalent except that it compares
// results with cmp.Equal, so R need not be comparable.
func DeepEquivalent[A, R any](got, want func(A) R, inputs ...A) qt.Checker {
	return &equivalentChecker[A, R]{
		got:    got,
		want:   want,
		inputs: inputs,
		equal: func(x, y R) bool {
			return cmp.Equal(x, y)
		},
	}
}

type equivalentChecker[A, R any] struct {
	got, want func(A) R
	inputs    []A
	equal     func(R, R) bool
}

// Check implements qt.Checker.Check.
func (c *equivalentChecker[A, R]) Check(note func(key string, value any)) error {
	if len(c.inputs) == 0 {
		return qt.BadCheckf("no inputs to check with")
	}
	for i, in := range c.inputs {
		got, want := c.got(in), c.want(in)
		if !c.equal(got, want) {
			note("input", in)
			note("got result", got)
			note("want result", want)
			return fmt.Errorf("functions return different results for input %d", i)
		}
	}
	return nil
}

// Args implements qt.Checker.Args.
func (c *equivalentChecker[A, R]) Args() []qt.Arg {
	return []qt.Arg{{
		Name:  "inputs",
		Value: c.inputs,
	}}
}

// Trace records the order in which named calls happen.
// It is safe to use concurrently.
type Trace struct {
	mu    sync.Mutex
	calls []string
}

// Add records a call to name.
func (t *Trace) Add(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, name)
}

// Calls returns the names recorded so far, in order.
func (t *Trace) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

// Reset forgets all the calls recorded so far.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = nil
}

// Record returns a function that records a call to name
// in t before calling f.
func Record[A, R any](t *Trace, name string, f func(A) R) func(A) R {
	return func(a A) R {
		t.Add(name)
		return f(a)
	}
}

// CalledTimes returns a checker that checks that a Trace
// holds exactly n calls to name.
func CalledTimes(t *Trace, name string, n int) qt.Checker {
	return &calledTimesChecker{
		trace: t,
		name:  name,
		n:     n,
	}
}

type calledTimesChecker struct {
	trace *Trace
	name  string
	n     int
}

// errWrongCount is returned by calledTimesChecker.Check.
var errWrongCount = errors.New("unexpected number of calls")

// Check implements qt.Checker.Check.
func (c *calledTimesChecker) Check(note func(key string, value any)) error {
	calls := c.trace.Calls()
	count := 0
	for _, name := range calls {
		if name == c.name {
			count++
		}
	}
	if count != c.n {
		note("calls", calls)
		note("got count", count)
		return errWrongCount
	}
	return nil
}

// Args implements qt.Checker.Args.
func (c *calledTimesChecker) Args() []qt.Arg {
	return []qt.Arg{{
		Name:  "name",
		Value: c.name,
	}, {
		Name:  "want count",
		Value: c.n,
	}}
}
