// models/client.go
package models

const ClientTable = "ldt_clients"

// Client 借用人；name 大小写不敏感唯一（Migrate 里建 LOWER(name) 唯一索引）
type Client struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Client) TableName() string { return ClientTable }
