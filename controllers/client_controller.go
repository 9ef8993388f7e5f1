// controllers/client_controller.go
package controllers

import (
	"net/http"
	"strings"

	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/models"
	"Gin_postgres_redis_game_loans/rules"

	"github.com/gin-gonic/gin"
)

type ClientController struct{ *Srv }

func NewClientController(s *Srv) *ClientController { return &ClientController{Srv: s} }

// 整表列表，带 Redis 缓存；编辑表单的下拉和本地查重都吃这一份
func (cc *ClientController) ListClients(c *gin.Context) {
	ctx := c.Request.Context()
	if list, ok := cc.Refs.GetClients(ctx); ok {
		c.JSON(http.StatusOK, list)
		return
	}
	list, err := cc.Repo.ListClients(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = cc.Refs.SetClients(ctx, list) // 缓存写失败不影响响应
	c.JSON(http.StatusOK, list)
}

// PUT /client 新建，PUT /client/:id 整体替换
func (cc *ClientController) SaveClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	var in models.Client
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		writeError(c, rules.ErrNameRequired)
		return
	}

	saved, err := cc.Repo.SaveClient(c.Request.Context(), id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = cc.Refs.InvalidateClients(c.Request.Context())
	c.JSON(http.StatusOK, saved)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || id == nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	if err := cc.Repo.DeleteClient(c.Request.Context(), *id); err != nil {
		writeError(c, err)
		return
	}
	_ = cc.Refs.InvalidateClients(c.Request.Context())
	c.JSON(http.StatusOK, app.H{"ok": true})
}
