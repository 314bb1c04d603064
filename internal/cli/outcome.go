package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apstndb/pcomb"
	"github.com/apstndb/pcomb/enums"
	"github.com/apstndb/pcomb/internal/grammar/calc"
	"github.com/apstndb/pcomb/internal/grammar/semver"
	"github.com/apstndb/pcomb/seq"
	"github.com/apstndb/pcomb/text"
	"github.com/sourcegraph/conc/iter"
)

// Status classifies how far an input got.
type Status string

const (
	StatusOK        Status = "OK"
	StatusPartial   Status = "PARTIAL"
	StatusNoMatch   Status = "NO_MATCH"
	StatusEvalError Status = "EVAL_ERROR"
)

// Outcome is the result of running one input through a grammar.
type Outcome struct {
	Input     string `json:"input" yaml:"input"`
	Status    Status `json:"status" yaml:"status"`
	Tree      string `json:"tree,omitempty" yaml:"tree,omitempty"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	Remaining string `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the input was consumed entirely and evaluated.
func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

// Evaluator runs a single input.
type Evaluator func(input string) Outcome

var errUnknownGrammar = errors.New("unknown grammar")

// newEvaluator returns the evaluator for kind. When trace is set, every
// attempt of the top level grammar is logged at debug level.
func newEvaluator(kind enums.GrammarKind, logger *slog.Logger, trace bool) (Evaluator, error) {
	switch kind {
	case enums.GrammarKindCalc:
		g := traced(logger, trace, "calc", calc.Grammar)
		return func(input string) Outcome {
			return evaluate(input, g, func(n calc.Node) (any, error) { return n.Eval() })
		}, nil
	case enums.GrammarKindSemver:
		g := traced(logger, trace, "semver", semver.Grammar)
		return func(input string) Outcome {
			return evaluate(input, g, func(v semver.Version) (any, error) { return v, nil })
		}, nil
	default:
		return nil, fmt.Errorf("%w: %v", errUnknownGrammar, kind)
	}
}

func traced[T any](logger *slog.Logger, trace bool, name string, g text.Parser[T]) text.Parser[T] {
	if !trace {
		return g
	}
	return pcomb.Trace[seq.Text](logger, name, g)
}

func evaluate[T fmt.Stringer](input string, g text.Parser[T], eval func(T) (any, error)) Outcome {
	tree, rest, ok := text.Run(g, input)
	switch {
	case !ok:
		return Outcome{Input: input, Status: StatusNoMatch, Remaining: input}
	case rest != "":
		return Outcome{Input: input, Status: StatusPartial, Tree: tree.String(), Remaining: rest}
	}

	v, err := eval(tree)
	if err != nil {
		return Outcome{Input: input, Status: StatusEvalError, Tree: tree.String(), Error: err.Error()}
	}
	return Outcome{Input: input, Status: StatusOK, Tree: tree.String(), Value: v}
}

// evaluateAll evaluates inputs with at most jobs concurrent evaluations.
// Outcomes are in input order. Inputs not started before ctx is done are
// reported as errors.
func evaluateAll(ctx context.Context, eval Evaluator, inputs []string, jobs int) []Outcome {
	mapper := iter.Mapper[string, Outcome]{MaxGoroutines: jobs}
	return mapper.Map(inputs, func(input *string) Outcome {
		if err := ctx.Err(); err != nil {
			return Outcome{Input: *input, Status: StatusEvalError, Error: err.Error()}
		}
		return eval(*input)
	})
}
