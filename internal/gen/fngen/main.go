// The fngen command writes the per-arity source files of the
// fntools packages. It is invoked by go generate; see the
// go:generate directives in tuple, tuple/tuplefunc and combine.
//
// Usage:
//
//	fngen [--max-arity n] [--output file] kind
//
// where kind is one of tuple, tuplefunc, combine or chain.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/rogpeppe/fntools/internal/gen"
)

type options struct {
	MaxArity int    `short:"n" long:"max-arity" default:"8" description:"largest arity to generate code for"`
	Output   string `short:"o" long:"output" description:"file to write; defaults to the conventional name for kind"`
	Args     struct {
		Kind string `positional-arg-name:"kind" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fngen: ")
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// parseArgs parses the command line arguments, not including
// the command name. Errors are printed to stderr as a side effect.
func parseArgs(args []string) (options, error) {
	var opts options
	_, err := flags.NewParser(&opts, flags.Default).ParseArgs(args)
	return opts, err
}

func run(opts options) error {
	kind := opts.Args.Kind
	out := opts.Output
	if out == "" {
		name, err := gen.FileName(kind)
		if err != nil {
			return fmt.Errorf("%w (want one of %s)", err, strings.Join(gen.Kinds(), ", "))
		}
		out = name
	}
	src, err := gen.Generate(kind, gen.Config{
		MaxArity: opts.MaxArity,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o666)
}
