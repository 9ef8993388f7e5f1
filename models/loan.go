// models/loan.go
package models

import "time"

const LoanTable = "ldt_loans"

// Loan 一次借出：一个 client + 一个 game + 闭区间日期 [startDate, endDate]
// Wire 格式里嵌完整的 game/client 对象，id 列不单独输出
type Loan struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID   int64   `gorm:"index;not null" json:"-"`
	Game     *Game   `gorm:"foreignKey:GameID" json:"game"`
	ClientID int64   `gorm:"index;not null" json:"-"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client"`

	StartDate Date `gorm:"type:date;index;not null" json:"startDate"`
	EndDate   Date `gorm:"type:date;index;not null" json:"endDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Loan) TableName() string { return LoanTable }
