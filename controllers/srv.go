// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/cache"
	"Gin_postgres_redis_game_loans/db"
	"Gin_postgres_redis_game_loans/rules"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Repo *db.Repo
	Refs *cache.RefCache
	Cfg  app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo: db.NewRepo(a.DB),
		Refs: cache.NewRefCache(a.RDB, a.Config.RefTTL),
		Cfg:  a.Config,
	}
}

// --- helpers ---

// 统一把业务错误翻成状态码；前端只认 {"error": msg} 里的文案
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrLoanNotFound),
		errors.Is(err, db.ErrClientNotFound),
		errors.Is(err, db.ErrGameNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, db.ErrGameUnavailable),
		errors.Is(err, db.ErrClientLoanLimit),
		errors.Is(err, db.ErrClientNameTaken),
		errors.Is(err, db.ErrClientHasLoans):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	case errors.Is(err, rules.ErrMissingField),
		errors.Is(err, rules.ErrEndBeforeStart),
		errors.Is(err, rules.ErrDurationExceeded),
		errors.Is(err, rules.ErrNameRequired):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

// 路径里的可选 id：PUT /xxx 新建，PUT /xxx/:id 整体替换
func idParam(c *gin.Context) (*int64, bool) {
	s := c.Param("id")
	if s == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
