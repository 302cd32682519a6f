package combine

import "errors"

// ErrCalledTwice is the value passed to panic when a function
// returned by one of the Once functions is called more than once.
var ErrCalledTwice = errors.New("combine: consume-once function called more than once")
