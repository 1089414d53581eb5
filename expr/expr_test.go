// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	vars := Vars{"n": 3, "count": 12, "time": 0.5, "angle_step": 2 * math.Pi / 12}

	tests := []struct {
		name string
		src  string
		want float64
	}{
		{"integer", "42", 42},
		{"float", "2.5", 2.5},
		{"leading dot", ".5", 0.5},
		{"exponent", "1e3", 1000},
		{"negative exponent", "25e-2", 0.25},
		{"precedence", "1 + 2 * 3", 7},
		{"parentheses", "(1 + 2) * 3", 9},
		{"left assoc sub", "10 - 4 - 3", 3},
		{"left assoc div", "24 / 4 / 2", 3},
		{"unary minus", "-5 + 2", -3},
		{"double unary", "--2", 2},
		{"unary plus", "+2", 2},
		{"power", "2 ** 10", 1024},
		{"power right assoc", "2 ** 3 ** 2", 512},
		{"power binds tighter than unary", "-2 ** 2", -4},
		{"signed exponent", "2 ** -1", 0.5},
		{"floor div", "7 // 2", 3},
		{"floor div negative", "-7 // 2", -4},
		{"modulo", "7 % 3", 1},
		{"modulo sign follows divisor", "-7 % 3", 2},
		{"modulo negative divisor", "7 % -3", -2},
		{"variable", "n * angle_step", 3 * 2 * math.Pi / 12},
		{"constants", "tau - 2 * pi", 0},
		{"e", "e", math.E},
		{"sin", "sin(pi/2)", 1},
		{"cos", "cos(0)", 1},
		{"atan", "atan(1) * 4", math.Pi},
		{"sqrt", "sqrt(16)", 4},
		{"abs", "abs(-3)", 3},
		{"pow", "pow(3, 2)", 9},
		{"natural log", "log(e)", 1},
		{"log base", "log(8, 2)", 3},
		{"log10", "log10(1000)", 3},
		{"floor", "floor(-1.5)", -2},
		{"ceil", "ceil(1.2)", 2},
		{"round half even", "round(2.5)", 2},
		{"round half even odd", "round(3.5)", 4},
		{"round digits", "round(3.14159, 2)", 3.14},
		{"hyperbolic", "tanh(0) + cosh(0) + sinh(0)", 1},
		{"nested calls", "sqrt(pow(3, 2) + pow(4, 2))", 5},
		{"time expression", "100 + 50 * sin(time * 0)", 100},
		{"whitespace", "  1\t+\n1 ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.src, vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrSyntax},
		{"blank", "   ", ErrSyntax},
		{"dangling operator", "1 +", ErrSyntax},
		{"unbalanced", "(1 + 2", ErrSyntax},
		{"extra paren", "1 + 2)", ErrSyntax},
		{"two operands", "1 2", ErrSyntax},
		{"bad character", "1 $ 2", ErrSyntax},
		{"attribute access", "math.pi", ErrSyntax},
		{"string literal", "'abc'", ErrSyntax},
		{"unknown variable", "unknown_var", ErrUnknownName},
		{"unknown function", "open(1)", ErrUnknownName},
		{"dunder", "__import__(1)", ErrUnknownName},
		{"call of variable", "n(2)", ErrUnknownName},
		{"arity too few", "pow(2)", ErrArity},
		{"arity too many", "sin(1, 2)", ErrArity},
		{"division by zero", "1/0", ErrDivByZero},
		{"floor div by zero", "1 // 0", ErrDivByZero},
		{"modulo by zero", "1 % 0", ErrDivByZero},
		{"zero to negative power", "0 ** -1", ErrDivByZero},
		{"sqrt domain", "sqrt(-1)", ErrNonFinite},
		{"acos domain", "acos(2)", ErrNonFinite},
		{"log of zero", "log(0)", ErrNonFinite},
		{"log base one", "log(2, 1)", ErrNonFinite},
		{"overflow", "exp(1000)", ErrNonFinite},
		{"fractional power of negative", "(-8) ** (1/3)", ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.src, Vars{"n": 1})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluateNeverFails(t *testing.T) {
	assert.InDelta(t, 1.0, Evaluate("sin(pi/2)", nil), 1e-12)
	assert.Equal(t, 0.0, Evaluate("unknown_var", nil))
	assert.Equal(t, 0.0, Evaluate("1/0", nil))
	assert.Equal(t, 0.0, Evaluate("((", nil))
}

func TestEnvShadowsConstants(t *testing.T) {
	got, err := Eval("pi", Vars{"pi": 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestNilEnv(t *testing.T) {
	got, err := Eval("tau / 2", nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 1e-12)
}

func TestEvaluatorCache(t *testing.T) {
	ev := NewEvaluator()

	p1, err := ev.Compile("n * 2")
	require.NoError(t, err)
	p2, err := ev.Compile("n * 2")
	require.NoError(t, err)
	assert.Same(t, p1, p2, "second Compile should hit the cache")
	assert.Equal(t, "n * 2", p1.Source())

	// Values are not cached.
	v1, err := ev.Eval("n * 2", Vars{"n": 1})
	require.NoError(t, err)
	v2, err := ev.Eval("n * 2", Vars{"n": 5})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v1)
	assert.Equal(t, 10.0, v2)

	// Compile errors are cached as well.
	_, err1 := ev.Compile("1 +")
	_, err2 := ev.Compile("1 +")
	assert.ErrorIs(t, err1, ErrSyntax)
	assert.Equal(t, err1, err2)
}

func TestZeroEvaluator(t *testing.T) {
	var ev Evaluator
	assert.Equal(t, 6.0, ev.Evaluate("2 * 3", nil))
}

func TestEvaluatorConcurrent(t *testing.T) {
	ev := NewEvaluator()
	done := make(chan float64)
	for i := 0; i < 8; i++ {
		go func(i int) {
			done <- ev.Evaluate("n + 1", Vars{"n": float64(i)})
		}(i)
	}
	sum := 0.0
	for i := 0; i < 8; i++ {
		sum += <-done
	}
	assert.Equal(t, 36.0, sum)
}
