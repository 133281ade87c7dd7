package lib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := map[string]int64{
		"1+1":           2,
		"(1+2)^2":       9,
		"5+3!":          11,
		"7+7*2":         21,
		"(3+3)/3":       2,
		"4!":            24,
		"10-3":          7,
		"2-5":           -3,
		"2^3^2":         512,
		"3!!":           720,
		"(2+2)! % 5^2":  24,
		"100 / 7 % 4":   2,
		"((((42))))":    42,
		"2 * (3 + 4)!":  10080,
		"0!":            1,
		"1 2 + 3":       15,
		" 7 ":           7,
	}
	for expr, expected := range cases {
		result, err := Calculate(expr)
		require.NoError(t, err, expr)
		require.Equal(t, expected, result, expr)
	}
}

func TestCalculateLargestLiteral(t *testing.T) {
	result, err := Calculate("9223372036854775807")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), result)
}

func TestCalculateIsRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		result, err := Calculate("3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3")
		require.NoError(t, err)
		require.Equal(t, int64(3), result)
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := map[string]error{
		"1 $ 2":                ErrLexical,
		"2+foo":                ErrLexical,
		"99999999999999999999": ErrLexical,
		"(1":                   ErrStructural,
		")":                    ErrStructural,
		"":                     ErrStructural,
		"1+":                   ErrStructural,
		"!":                    ErrStructural,
		"()":                   ErrStructural,
		"1/0":                  ErrArithmetic,
		"5%(2-2)":              ErrArithmetic,
		"2^(1-2)":              ErrArithmetic,
		"(1-2)!":               ErrArithmetic,
		"sqrt(4)":              ErrUnsupported,
		"sum(1+2)*2":           ErrUnsupported,
	}
	for expr, kind := range cases {
		result, err := Calculate(expr)
		require.Error(t, err, expr)
		require.True(t, errors.Is(err, kind), "%s: %v", expr, err)
		require.Equal(t, int64(0), result, expr)
	}
}

func TestCalculateLexicalErrorWinsOverStructural(t *testing.T) {
	_, err := Calculate("(1 $")
	require.True(t, errors.Is(err, ErrLexical))
	require.False(t, errors.Is(err, ErrStructural))
}

func TestCalculateUnsupportedFunction(t *testing.T) {
	_, err := Calculate("1 + average(2)")
	var unsupported *UnsupportedFeatureError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, FnAverage, unsupported.Function)
	require.Equal(t, 5, unsupported.Pos)
	require.Equal(t, "Error at col 5: function average is not supported", unsupported.Error())
}

func TestCalculateOrFailed(t *testing.T) {
	require.Equal(t, int64(9), CalculateOrFailed("(1+2)^2"))
	require.Equal(t, Failed, CalculateOrFailed("1/0"))
	require.Equal(t, Failed, CalculateOrFailed("x"))
}
