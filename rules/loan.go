// rules/loan.go
package rules

import (
	"errors"
	"math"
	"time"

	"Gin_postgres_redis_game_loans/models"
)

// 最长可借天数
const MaxLoanDays = 14

var (
	ErrMissingField     = errors.New("client, game, start date and end date are all required")
	ErrEndBeforeStart   = errors.New("end date cannot be before start date")
	ErrDurationExceeded = errors.New("loan period cannot exceed 14 days")
)

// ValidateLoan 纯函数校验一条借出草稿，按固定顺序返回第一个失败；
// 不做任何 I/O，冲突类规则（档期重叠、客户限额）只有后端能裁定
func ValidateLoan(l *models.Loan) error {
	if l == nil || l.Client == nil || l.Game == nil || l.StartDate.IsZero() || l.EndDate.IsZero() {
		return ErrMissingField
	}
	if l.EndDate.Before(l.StartDate.Time) {
		return ErrEndBeforeStart
	}
	if LoanDays(l.StartDate.Time, l.EndDate.Time) > MaxLoanDays {
		return ErrDurationExceeded
	}
	return nil
}

// LoanDays 起止之间的整天数，不足一天向上取整：
// 13.1 天算 14 天，绝不往下截断到限额以内。
// 数的是日历天：两端先重锚到 UTC 再相减，
// 本地时区夏令时切换多出或少掉的那一小时不会影响结果
func LoanDays(start, end time.Time) int {
	return int(math.Ceil(rebaseUTC(end).Sub(rebaseUTC(start)).Hours() / 24))
}

// rebaseUTC 保留日历和钟面字段，丢掉时区偏移
func rebaseUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
