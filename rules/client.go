// rules/client.go
package rules

import (
	"errors"
	"strings"

	"Gin_postgres_redis_game_loans/models"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrDuplicateName = errors.New("a client with that name already exists")
)

// FindDuplicateClientName 在已拉取的快照里做大小写不敏感查重，
// 用 id 排除自己（编辑时原名重新提交不算撞名）；id 为 0 表示还没保存过。
// 快照可能不新鲜，后端保存时还会再查一次
func FindDuplicateClientName(name string, id int64, existing []models.Client) *models.Client {
	for i := range existing {
		c := &existing[i]
		if c.ID == id {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
