// File: internal/service/calculator.go
package service

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidOperand 運算元無法解析為數字
	ErrInvalidOperand = errors.New("operand is not a valid number")
	// ErrDivisionByZero 除數為零
	ErrDivisionByZero = errors.New("cannot divide by zero")
	// ErrNegativeOperand 負數無法開平方根
	ErrNegativeOperand = errors.New("cannot calculate square root of a negative number")
	// ErrNonFiniteResult 運算結果非有限數
	ErrNonFiniteResult = errors.New("the result is not a finite number")
)

// ParseOperand 解析單一運算元
// 接受 JSON 數字、整數與數字字串，其餘一律回傳 ErrInvalidOperand
func ParseOperand(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, ErrInvalidOperand
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, ErrInvalidOperand
		}
		return f, nil
	default:
		return 0, ErrInvalidOperand
	}
}

func Add(a, b float64) (float64, error) {
	return a + b, nil
}

func Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

func Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power 計算 a 的 b 次方，結果必須為有限數
func Power(a, b float64) (float64, error) {
	result := math.Pow(a, b)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrNonFiniteResult
	}
	return result, nil
}

// Sqrt 計算平方根，a 必須為非負數
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNegativeOperand
	}
	return math.Sqrt(a), nil
}
