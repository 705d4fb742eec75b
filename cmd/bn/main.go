// The bn command is a calculator for arbitrary-precision decimals.
//
// Usage:
//
//	bn [-v] op [operand...]
//
// The operations are:
//
//	add x [y...]    x + y + ... (x + 1 without y)
//	sub x [y...]    x - y - ... (x - 1 without y)
//	mul x [y...]    x * y * ... (x * 2 without y)
//	quo x [y...]    division (not supported)
//	cmp x y         -1, 0 or 1 as x is less than, equal to or greater than y
//	cmpabs x y      cmp on magnitudes
//	neg x           -x
//	trunc x         x rounded toward zero
//	floor x         x rounded toward negative infinity
//	ceil x          x rounded toward positive infinity
//	round x         x rounded to nearest, halves toward positive infinity
//	not x           -(trunc(x) + 1)
//	fmt x           x in canonical form
//
// The -v flag logs each parsed operand and its limb layout to standard
// error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/bn/decimal"
)

// Error is the class of command line usage errors.
var Error = errs.Class("bn")

var verbose = flag.Bool("v", false, "log parsed operands")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: bn [-v] op [operand...]\n")
	fmt.Fprintf(os.Stderr, "ops: add sub mul quo cmp cmpabs neg trunc floor ceil round not fmt\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)

	return config.Build()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = run(flag.Args(), os.Stdout, log)
	if err != nil {
		log.Error("failed", zap.Error(err))

		if Error.Has(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type arity int

const (
	unary arity = iota
	binary
	variadic
)

type op struct {
	arity arity
	apply func(x decimal.Decimal, ys []decimal.Decimal) (string, error)
}

func fixed(f func(decimal.Decimal) decimal.Decimal) op {
	return op{
		arity: unary,
		apply: func(x decimal.Decimal, _ []decimal.Decimal) (string, error) {
			return f(x).String(), nil
		},
	}
}

func chain(f func(decimal.Decimal, ...decimal.Decimal) decimal.Decimal) op {
	return op{
		arity: variadic,
		apply: func(x decimal.Decimal, ys []decimal.Decimal) (string, error) {
			return f(x, ys...).String(), nil
		},
	}
}

func compare(opts ...decimal.CompareOption) op {
	return op{
		arity: binary,
		apply: func(x decimal.Decimal, ys []decimal.Decimal) (string, error) {
			return fmt.Sprint(x.Cmp(ys[0], opts...)), nil
		},
	}
}

var ops = map[string]op{
	"add":    chain(decimal.Decimal.Add),
	"sub":    chain(decimal.Decimal.Sub),
	"mul":    chain(decimal.Decimal.Mul),
	"cmp":    compare(),
	"cmpabs": compare(decimal.IgnoreSign()),
	"neg":    fixed(decimal.Decimal.Neg),
	"trunc":  fixed(decimal.Decimal.Trunc),
	"floor":  fixed(decimal.Decimal.Floor),
	"ceil":   fixed(decimal.Decimal.Ceil),
	"round":  fixed(decimal.Decimal.Round),
	"not":    fixed(decimal.Decimal.Not),
	"fmt":    fixed(decimal.Decimal.Clone),
	"quo": {
		arity: variadic,
		apply: func(x decimal.Decimal, ys []decimal.Decimal) (string, error) {
			z, err := x.Quo(ys...)
			if err != nil {
				return "", err
			}

			return z.String(), nil
		},
	},
}

// run evaluates the operation named by args[0] on the remaining arguments
// and writes the result to w.
func run(args []string, w io.Writer, log *zap.Logger) (err error) {
	if len(args) == 0 {
		return Error.New("missing operation")
	}

	name, operands := args[0], args[1:]

	o, ok := ops[name]
	if !ok {
		return Error.New("unknown operation %q", name)
	}

	switch {
	case o.arity == unary && len(operands) != 1:
		return Error.New("%s takes one operand, got %d", name, len(operands))
	case o.arity == binary && len(operands) != 2:
		return Error.New("%s takes two operands, got %d", name, len(operands))
	case o.arity == variadic && len(operands) < 1:
		return Error.New("%s takes at least one operand", name)
	}

	ds := make([]decimal.Decimal, 0, len(operands))
	for i, text := range operands {
		d, err := decimal.Parse(text)
		if err != nil {
			return err
		}

		log.Debug("operand",
			zap.Int("index", i),
			zap.String("text", text),
			zap.Int("sign", d.Sign()),
			zap.Uint16s("limbs", d.Limbs()),
			zap.Int("scale", d.Scale()),
		)

		ds = append(ds, d)
	}

	out, err := o.apply(ds[0], ds[1:])
	if err != nil {
		return err
	}

	log.Debug("result", zap.String("op", name), zap.String("value", out))

	_, err = fmt.Fprintln(w, out)

	return err
}
