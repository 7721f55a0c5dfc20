package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calc-api/internal/database"
	"calc-api/internal/model"
)

const (
	// DefaultHistoryLimit 未指定 limit 時的預設值
	DefaultHistoryLimit = 20
	// MaxHistoryLimit 單頁筆數上限
	MaxHistoryLimit = 100
)

// HistoryFilter 歷史查詢條件，nil 欄位表示不過濾
type HistoryFilter struct {
	Limit     int
	Offset    int
	Operation *model.Operation
	StartDate *time.Time
	EndDate   *time.Time
}

// HistoryPage 單頁歷史查詢結果
type HistoryPage struct {
	Calculations []model.Calculation
	Total        int
	Limit        int
	Offset       int
	HasMore      bool
}

// OperationStat 單一運算種類的使用統計
type OperationStat struct {
	Operation model.Operation `json:"operation"`
	Count     int             `json:"count"`
	LastUsed  time.Time       `json:"last_used"`
}

// CalculationStats 使用者的整體計算統計
type CalculationStats struct {
	TotalCalculations int             `json:"total_calculations"`
	OperationStats    []OperationStat `json:"operation_stats"`
	FirstCalculation  *time.Time      `json:"first_calculation,omitempty"`
	LastCalculation   *time.Time      `json:"last_calculation,omitempty"`
}

// CreateCalculation 寫入一筆不可變的歷史紀錄
func CreateCalculation(ctx context.Context, db database.DB, calc *model.Calculation) (*model.Calculation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO calculations (user_id, operation, operand_a, operand_b, result, user_agent, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		calc.UserID,
		calc.Operation,
		calc.OperandA,
		calc.OperandB,
		calc.Result,
		calc.UserAgent,
		calc.IPAddress,
	)
	if err := row.Scan(&calc.ID, &calc.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateCalculation: %w", err)
	}
	return calc, nil
}

// ListCalculations 查詢指定使用者的歷史紀錄，新到舊排序
// 回傳符合條件的總筆數與 HasMore 旗標
func ListCalculations(ctx context.Context, db database.DB, userID int, f HistoryFilter) (*HistoryPage, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		f.Limit = MaxHistoryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	conds := []string{"user_id = $1"}
	args := []any{userID}
	if f.Operation != nil {
		args = append(args, *f.Operation)
		conds = append(conds, fmt.Sprintf("operation = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM calculations WHERE `+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, fmt.Errorf("ListCalculations: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, user_id, operation, operand_a, operand_b, result, user_agent, ip_address, created_at
		 FROM calculations WHERE %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	rows, err := db.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("ListCalculations: %w", err)
	}
	defer rows.Close()

	calcs := []model.Calculation{}
	for rows.Next() {
		var c model.Calculation
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Operation,
			&c.OperandA,
			&c.OperandB,
			&c.Result,
			&c.UserAgent,
			&c.IPAddress,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListCalculations: %w", err)
		}
		calcs = append(calcs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCalculations: %w", err)
	}

	return &HistoryPage{
		Calculations: calcs,
		Total:        total,
		Limit:        f.Limit,
		Offset:       f.Offset,
		HasMore:      f.Offset+f.Limit < total,
	}, nil
}

// ClearCalculations 刪除指定使用者的全部歷史，回傳刪除筆數
func ClearCalculations(ctx context.Context, db database.DB, userID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM calculations WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("ClearCalculations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetCalculationStats 彙總指定使用者的計算統計
// 各運算種類依使用次數由多到少排序
func GetCalculationStats(ctx context.Context, db database.DB, userID int) (*CalculationStats, error) {
	stats := &CalculationStats{OperationStats: []OperationStat{}}

	row := db.QueryRow(ctx,
		`SELECT COUNT(*), MIN(created_at), MAX(created_at)
		 FROM calculations WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&stats.TotalCalculations, &stats.FirstCalculation, &stats.LastCalculation); err != nil {
		return nil, fmt.Errorf("GetCalculationStats: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT operation, COUNT(*) AS count, MAX(created_at) AS last_used
		 FROM calculations WHERE user_id = $1
		 GROUP BY operation
		 ORDER BY count DESC, operation`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetCalculationStats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s OperationStat
		if err := rows.Scan(&s.Operation, &s.Count, &s.LastUsed); err != nil {
			return nil, fmt.Errorf("GetCalculationStats: %w", err)
		}
		stats.OperationStats = append(stats.OperationStats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetCalculationStats: %w", err)
	}

	return stats, nil
}
