// controllers/game_controller.go
package controllers

import (
	"net/http"
	"strings"

	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/models"

	"github.com/gin-gonic/gin"
)

type GameController struct{ *Srv }

func NewGameController(s *Srv) *GameController { return &GameController{Srv: s} }

// 整表列表，可选 ?title= 关键词过滤；只有无过滤的整表走缓存
func (gc *GameController) ListGames(c *gin.Context) {
	ctx := c.Request.Context()
	title := c.Query("title")

	if title == "" {
		if list, ok := gc.Refs.GetGames(ctx); ok {
			c.JSON(http.StatusOK, list)
			return
		}
	}
	list, err := gc.Repo.ListGames(ctx, title)
	if err != nil {
		writeError(c, err)
		return
	}
	if title == "" {
		_ = gc.Refs.SetGames(ctx, list)
	}
	c.JSON(http.StatusOK, list)
}

// PUT /game 新建，PUT /game/:id 整体替换
func (gc *GameController) SaveGame(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	var in models.Game
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "title is required"})
		return
	}

	saved, err := gc.Repo.SaveGame(c.Request.Context(), id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = gc.Refs.InvalidateGames(c.Request.Context())
	c.JSON(http.StatusOK, saved)
}
