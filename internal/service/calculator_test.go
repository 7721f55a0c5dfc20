package service

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float64", 3.5, 3.5, false},
		{"int", 7, 7, false},
		{"json number", json.Number("2.25"), 2.25, false},
		{"numeric string", "10", 10, false},
		{"numeric string with spaces", " 4.5 ", 4.5, false},
		{"negative string", "-0.5", -0.5, false},
		{"garbage string", "abc", 0, true},
		{"empty string", "", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
		{"object", map[string]any{"a": 1}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOperand(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidOperand)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestBasicOperations(t *testing.T) {
	cases := []struct {
		name string
		fn   func(a, b float64) (float64, error)
		a, b float64
		want float64
	}{
		{"add", Add, 10, 5, 15},
		{"add negative", Add, -2.5, 1, -1.5},
		{"subtract", Subtract, 10, 5, 5},
		{"multiply", Multiply, 4, 2.5, 10},
		{"multiply by zero", Multiply, 123.45, 0, 0},
		{"divide", Divide, 10, 4, 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -3.7, math.MaxFloat64} {
		_, err := Divide(a, 0)
		require.ErrorIs(t, err, ErrDivisionByZero)
	}
}

func TestPower(t *testing.T) {
	got, err := Power(2, 10)
	require.NoError(t, err)
	require.Equal(t, float64(1024), got)

	got, err = Power(9, 0.5)
	require.NoError(t, err)
	require.Equal(t, float64(3), got)

	// 溢位為無限大
	_, err = Power(1e308, 2)
	require.ErrorIs(t, err, ErrNonFiniteResult)

	// 負底數的非整數次方為 NaN
	_, err = Power(-8, 0.5)
	require.ErrorIs(t, err, ErrNonFiniteResult)
}

func TestSqrt(t *testing.T) {
	got, err := Sqrt(16)
	require.NoError(t, err)
	require.Equal(t, float64(4), got)

	got, err = Sqrt(0)
	require.NoError(t, err)
	require.Equal(t, float64(0), got)

	_, err = Sqrt(-1)
	require.ErrorIs(t, err, ErrNegativeOperand)

	// sqrt(a*a) ≈ |a|
	for _, a := range []float64{-7.5, 0.001, 12345.678} {
		got, err = Sqrt(a * a)
		require.NoError(t, err)
		require.InDelta(t, math.Abs(a), got, 1e-9)
	}
}
