package groebner

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gopolynomial/groebner/parse"
	"github.com/gopolynomial/groebner/parse/scan"
)

// Parse parses input as a commutative polynomial expression over the field
// K, supporting +, -, *, ^ (non-negative integer exponents), / between two
// integer literals (a rational constant), and parentheses. variables maps
// variable names appearing in input to the index they occupy in the
// monomial exponent vector.
func Parse[O Ordering, K Field[K]](k K, variables map[string]int, input string) (*Polynomial[O, K], error) {
	n, err := parse.Parse(scan.NewScanner(bytes.NewBufferString(input)))
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return evaluate[O, K](n, k, variables)
}

func evaluate[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	switch n.Token.Type {
	case scan.Parenthesis:
		return evaluateParenthesis[O, K](n, k, variables)
	case scan.Operator:
		return evaluateOperator[O, K](n, k, variables)
	case scan.Int:
		return evaluateInt[O, K](n, k)
	case scan.Identifier:
		return evaluateIdentifier[O, K](n, k, variables)
	default:
		return nil, errors.Errorf("unknown node %#v", n)
	}
}

func evaluateParenthesis[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	if n.Left == nil {
		return nil, errors.Errorf("%#v", n)
	}
	return evaluate[O, K](n.Left, k, variables)
}

func evaluateOperator[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	switch n.Token.Text {
	case "+":
		return evaluatePlus[O, K](n, k, variables)
	case "-":
		return evaluateMinus[O, K](n, k, variables)
	case "*":
		return evaluateMultiply[O, K](n, k, variables)
	case "/":
		return evaluateDivide[O, K](n, k)
	case "^":
		return evaluatePower[O, K](n, k, variables)
	default:
		return nil, errors.Errorf("%#v", n)
	}
}

func evaluateIdentifier[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	v, ok := variables[n.Token.Text]
	if !ok {
		return nil, errors.Errorf("unknown variable %#v", n)
	}
	return FromVariable[O, K](k, v), nil
}

func evaluatePlus[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	left, right, err := evaluateLeftRight[O, K](n, k, variables)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return left.Add(right), nil
}

func evaluateMinus[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	left, right, err := evaluateLeftRight[O, K](n, k, variables)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return left.Sub(right), nil
}

func evaluateMultiply[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	left, right, err := evaluateLeftRight[O, K](n, k, variables)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return left.Mul(right), nil
}

func evaluateDivide[O Ordering, K Field[K]](n *parse.Node, k K) (*Polynomial[O, K], error) {
	if n.Left == nil || n.Right == nil {
		return nil, errors.Errorf("%#v", n)
	}
	num, err := strconv.Atoi(n.Left.Token.Text)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	denom, err := strconv.Atoi(n.Right.Token.Text)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if denom == 0 {
		return nil, errors.Errorf("division by zero: %#v", n)
	}
	c := ratFromFraction(k, num, denom)
	p := Zero[O, K](k)
	p.addTerm(1, Term[O, K]{Monomial: Identity[O](), Coefficient: c})
	return p, nil
}

// ratFromFraction builds the field element num/denom from repeated addition
// and a single division, the only portable way to reach an arbitrary
// rational constant for a generic field (mirrors FromInteger).
func ratFromFraction[K Field[K]](k K, num, denom int) K {
	return k.NewZero().Div(integerOf(k, num), integerOf(k, denom))
}

func integerOf[K Field[K]](k K, n int) K {
	sign := 1
	if n < 0 {
		sign, n = -1, -n
	}
	c := k.NewZero()
	one := k.NewOne()
	for i := 0; i < n; i++ {
		c = c.Add(c, one)
	}
	if sign < 0 {
		c = k.NewZero().Sub(k.NewZero(), c)
	}
	return c
}

func evaluatePower[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], error) {
	if n.Left == nil || n.Right == nil {
		return nil, errors.Errorf("%#v", n)
	}
	left, err := evaluate[O, K](n.Left, k, variables)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	exp, err := strconv.Atoi(n.Right.Token.Text)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	z := One[O, K](k)
	for i := 0; i < exp; i++ {
		z = z.Mul(left)
	}
	return z, nil
}

func evaluateInt[O Ordering, K Field[K]](n *parse.Node, k K) (*Polynomial[O, K], error) {
	i, err := strconv.Atoi(n.Token.Text)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return FromInteger[O, K](k, i), nil
}

func evaluateLeftRight[O Ordering, K Field[K]](n *parse.Node, k K, variables map[string]int) (*Polynomial[O, K], *Polynomial[O, K], error) {
	if n.Left == nil {
		return nil, nil, errors.Errorf("%#v", n)
	}
	left, err := evaluate[O, K](n.Left, k, variables)
	if err != nil {
		return nil, nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	if n.Right == nil {
		return nil, nil, errors.Errorf("%#v", n)
	}
	right, err := evaluate[O, K](n.Right, k, variables)
	if err != nil {
		return nil, nil, errors.Wrap(err, fmt.Sprintf("%#v", n))
	}
	return left, right, nil
}
