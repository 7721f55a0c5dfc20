// File: internal/model/calculation.go
package model

import "time"

// Operation 列舉支援的運算種類
type Operation string

const (
	OperationAddition       Operation = "addition"
	OperationSubtraction    Operation = "subtraction"
	OperationMultiplication Operation = "multiplication"
	OperationDivision       Operation = "division"
	OperationExponentiation Operation = "exponentiation"
	OperationSquareRoot     Operation = "square_root"
)

// Operations 依路由註冊順序列出全部運算種類
var Operations = []Operation{
	OperationAddition,
	OperationSubtraction,
	OperationMultiplication,
	OperationDivision,
	OperationExponentiation,
	OperationSquareRoot,
}

// Calculation 一筆不可變的計算歷史紀錄
// OperandB 在單運算元操作 (square_root) 時為 nil
type Calculation struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Operation Operation `db:"operation" json:"operation"`
	OperandA  float64   `db:"operand_a" json:"operand_a"`
	OperandB  *float64  `db:"operand_b" json:"operand_b,omitempty"`
	Result    float64   `db:"result" json:"result"`
	UserAgent *string   `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress *string   `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
