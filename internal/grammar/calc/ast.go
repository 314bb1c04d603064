// Package calc is an integer arithmetic grammar with the usual precedence
// of + - * / % and unary minus. Arithmetic wraps on int64 overflow.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is returned by Eval when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Node is an arithmetic expression tree.
type Node interface {
	Eval() (int64, error)
	// String renders the expression fully parenthesized.
	String() string
}

// Num is an integer literal.
type Num struct {
	Value int64
}

func (n Num) Eval() (int64, error) { return n.Value, nil }
func (n Num) String() string       { return strconv.FormatInt(n.Value, 10) }

// Neg is unary minus.
type Neg struct {
	X Node
}

func (n Neg) Eval() (int64, error) {
	x, err := n.X.Eval()
	if err != nil {
		return 0, err
	}
	return -x, nil
}

func (n Neg) String() string { return "(-" + n.X.String() + ")" }

// Binary is a binary operation. Op is one of "+", "-", "*", "/" and "%".
type Binary struct {
	Op          string
	Left, Right Node
}

func (b Binary) Eval() (int64, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/", "%":
		if r == 0 {
			return 0, fmt.Errorf("%w: %s", ErrDivisionByZero, b)
		}
		if b.Op == "/" {
			return l / r, nil
		}
		return l % r, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", b.Op)
	}
}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
