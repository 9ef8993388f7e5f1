// models/game.go
package models

const GameTable = "ldt_games"

// Game 可被借出的桌游；描述性字段对借还规则不透明
type Game struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Age      int    `gorm:"not null;default:0" json:"age"`
	Category string `gorm:"size:100" json:"category,omitempty"`
	Author   string `gorm:"size:100" json:"author,omitempty"`
}

func (Game) TableName() string { return GameTable }
