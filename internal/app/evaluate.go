package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/format"
)

// reportFunc receives evaluation progress in [0, 1]. Operations whose cost is
// dominated by a single library call report only completion.
type reportFunc func(float64)

// operation describes one evaluable operation: its operand count and the
// evaluation function. An arity of -1 marks a unary operation that is mapped
// over every operand, producing one request each.
type operation struct {
	arity int
	eval  func(ctx context.Context, args []bignum.Int, report reportFunc) (bignum.Int, error)
}

var errNegativeOperand = errors.New("operand must be non-negative")
var errNoInverse = errors.New("no modular inverse exists (operands are not coprime)")

// operations is the registry of evaluable operations, keyed by the name
// accepted on the command line.
var operations = map[string]operation{
	"add": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Add(args[1]), nil
	}},
	"sub": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Sub(args[1]), nil
	}},
	"mul": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Mul(args[1]), nil
	}},
	"quo": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Quo(args[1])
	}},
	"rem": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Rem(args[1])
	}},
	"div": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].DivFloor(args[1])
	}},
	"mod": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].ModFloor(args[1])
	}},
	"gcd": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].GCD(args[1]), nil
	}},
	"pow": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		exp, err := smallUint(args[1], math.MaxUint32)
		if err != nil {
			return bignum.Int{}, fmt.Errorf("exponent: %w", err)
		}
		return args[0].Pow(uint(exp)), nil
	}},
	"modpow": {arity: 3, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		if args[1].Sign() < 0 {
			return bignum.Int{}, fmt.Errorf("exponent: %w", errNegativeOperand)
		}
		return args[0].ModPow(args[1], args[2])
	}},
	"modinv": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		inv, ok, err := args[0].ModInverse(args[1])
		if err != nil {
			return bignum.Int{}, err
		}
		if !ok {
			return bignum.Int{}, errNoInverse
		}
		return inv, nil
	}},
	"lsh": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		k, err := smallUint(args[1], math.MaxUint32)
		if err != nil {
			return bignum.Int{}, fmt.Errorf("shift: %w", err)
		}
		return args[0].Lsh(uint(k)), nil
	}},
	"rsh": {arity: 2, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		k, err := smallUint(args[1], math.MaxUint32)
		if err != nil {
			return bignum.Int{}, fmt.Errorf("shift: %w", err)
		}
		return args[0].Rsh(uint(k)), nil
	}},
	"sqrt": {arity: -1, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		if args[0].Sign() < 0 {
			return bignum.Int{}, errNegativeOperand
		}
		return args[0].Sqrt(), nil
	}},
	"cbrt": {arity: -1, eval: func(_ context.Context, args []bignum.Int, _ reportFunc) (bignum.Int, error) {
		return args[0].Cbrt(), nil
	}},
	"fact": {arity: -1, eval: func(ctx context.Context, args []bignum.Int, report reportFunc) (bignum.Int, error) {
		n, err := smallUint(args[0], math.MaxUint32)
		if err != nil {
			return bignum.Int{}, err
		}
		f, err := factorial(ctx, n, report)
		if err != nil {
			return bignum.Int{}, err
		}
		return bignum.NewIntFromUint(f), nil
	}},
}

// OperationNames returns the sorted names of all evaluable operations.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// smallUint extracts a small non-negative integer from an operand, for
// exponents, shift amounts and factorial bounds.
func smallUint(x bignum.Int, max uint64) (uint64, error) {
	if x.Sign() < 0 {
		return 0, errNegativeOperand
	}
	v, ok := x.Uint64()
	if !ok || v > max {
		return 0, fmt.Errorf("operand exceeds the supported maximum %d", max)
	}
	return v, nil
}

// factorial computes n! with periodic cancellation checks and progress
// reporting, since large factorials run for a while.
func factorial(ctx context.Context, n uint64, report reportFunc) (bignum.Uint, error) {
	acc := bignum.NewUint(1)
	for i := uint64(2); i <= n; i++ {
		if i&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				return bignum.Uint{}, err
			}
			report(float64(i) / float64(n))
		}
		acc = acc.Mul(bignum.NewUint(i))
	}
	return acc, nil
}

// Request is one unit of evaluation: an operation applied to parsed operands.
type Request struct {
	// Desc is the human-readable form shown next to the result.
	Desc string

	op   operation
	args []bignum.Int
}

// Result pairs a request with its outcome.
type Result struct {
	Request  Request
	Value    bignum.Int
	Duration time.Duration
	Err      error
}

// buildRequests parses the configured operands and expands the configured
// operation into concrete requests. Unary operations produce one request per
// operand; fixed-arity operations produce a single request.
func buildRequests(cfg config.AppConfig) ([]Request, error) {
	op, ok := operations[cfg.Op]
	if !ok {
		return nil, apperrors.NewConfigError("unknown operation %q", cfg.Op)
	}

	args := make([]bignum.Int, len(cfg.Operands))
	for i, raw := range cfg.Operands {
		parsed, err := bignum.ParseInt(raw, cfg.InBase)
		if err != nil {
			return nil, apperrors.InputError{Position: i, Cause: err}
		}
		args[i] = parsed
	}

	if op.arity < 0 {
		if len(args) == 0 {
			return nil, apperrors.NewConfigError("operation %q expects at least one operand", cfg.Op)
		}
		requests := make([]Request, len(args))
		for i := range args {
			requests[i] = Request{
				Desc: describe(cfg.Op, cfg.Operands[i:i+1]),
				op:   op,
				args: args[i : i+1],
			}
		}
		return requests, nil
	}

	if len(args) != op.arity {
		return nil, apperrors.NewConfigError("operation %q expects %d operands, got %d", cfg.Op, op.arity, len(args))
	}
	return []Request{{Desc: describe(cfg.Op, cfg.Operands), op: op, args: args}}, nil
}

// descOperandLimit bounds how much of an operand is echoed back in a request
// description.
const descOperandLimit = 16

func describe(op string, operands []string) string {
	parts := make([]string, len(operands))
	for i, s := range operands {
		if len(s) > descOperandLimit {
			s = s[:descOperandLimit/2] + "…" + s[len(s)-descOperandLimit/2:]
		}
		parts[i] = s
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(parts, ", "))
}

// progressTracker guards the shared progress state against concurrent updates
// from the evaluation goroutines and the spinner refresh loop.
type progressTracker struct {
	mu  sync.Mutex
	eta *format.ProgressWithETA
}

func newProgressTracker(n int) *progressTracker {
	return &progressTracker{eta: format.NewProgressWithETA(n)}
}

func (t *progressTracker) update(index int, value float64) {
	t.mu.Lock()
	t.eta.Update(index, value)
	t.mu.Unlock()
}

func (t *progressTracker) snapshot() (float64, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.eta.CalculateAverage(), t.eta.GetETA()
}

// executeRequests evaluates all requests concurrently, bounded by the
// configured job limit. Failures are recorded per request rather than
// aborting the whole batch, so independent requests still complete.
func (a *Application) executeRequests(ctx context.Context, requests []Request, tracker *progressTracker) []Result {
	jobs := a.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]Result, len(requests))
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			start := time.Now()
			value, err := evalOne(ctx, req, func(p float64) { tracker.update(i, p) })
			tracker.update(i, 1)
			results[i] = Result{
				Request:  req,
				Value:    value,
				Duration: time.Since(start),
				Err:      err,
			}
			return nil
		})
	}
	// The goroutines never return errors; Wait only synchronizes completion.
	_ = g.Wait()
	return results
}

// evalOne runs a single request, honoring prior cancellation and wrapping
// failures with the operation name.
func evalOne(ctx context.Context, req Request, report reportFunc) (bignum.Int, error) {
	if err := ctx.Err(); err != nil {
		return bignum.Int{}, err
	}
	value, err := req.op.eval(ctx, req.args, report)
	if err != nil {
		if apperrors.IsContextError(err) {
			return bignum.Int{}, err
		}
		return bignum.Int{}, apperrors.EvaluationError{Op: req.Desc, Cause: err}
	}
	return value, nil
}
