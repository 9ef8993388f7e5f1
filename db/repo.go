package db

import (
	"Gin_postgres_redis_game_loans/query"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// NormalizePage 分页兜底：负页码归零，页大小非法时用默认值
func NormalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = query.DefaultPageSize
	}
	return page, size
}
