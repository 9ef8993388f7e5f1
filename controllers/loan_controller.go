// controllers/loan_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/models"
	"Gin_postgres_redis_game_loans/query"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

// FindPage 搜索用 POST：过滤条件在 URL（idGame/idClient/date，缺省即不过滤），
// 分页在 body（pageNumber/pageSize，body 可空，空时走默认分页）
func (lc *LoanController) FindPage(c *gin.Context) {
	var spec query.QuerySpec

	if v := c.Query("idGame"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid idGame"})
			return
		}
		spec.IDGame = &id
	}
	if v := c.Query("idClient"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid idClient"})
			return
		}
		spec.IDClient = &id
	}
	if v := c.Query("date"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		spec.Date = &d
	}

	var pageable query.PageableRequest
	_ = c.ShouldBindJSON(&pageable)
	spec.Pageable = pageable

	page, err := lc.Repo.SearchLoans(c.Request.Context(), spec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PUT /loan 新建，PUT /loan/:id 整体替换；冲突判定全在 Repo 的事务里
func (lc *LoanController) SaveLoan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	var in models.Loan
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	saved, err := lc.Repo.SaveLoan(c.Request.Context(), id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (lc *LoanController) DeleteLoan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || id == nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}
	if err := lc.Repo.DeleteLoan(c.Request.Context(), *id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
