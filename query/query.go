// query/query.go
package query

import (
	"net/url"
	"strconv"
	"time"

	"Gin_postgres_redis_game_loans/models"
)

// 分页缺省值，和后端的兜底保持一致
const DefaultPageSize = 10

// PageableRequest 0 起始页码 + 页大小，作为 POST body 发给后端
type PageableRequest struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// QuerySpec 规范化后的过滤+分页请求；nil 字段表示不过滤
type QuerySpec struct {
	IDGame   *int64
	IDClient *int64
	Date     *models.Date
	Pageable PageableRequest
}

// Values 只输出有值的过滤条件，没给的键整个省略，
// 后端对缺失的键统一走“不过滤”的默认行为
func (q QuerySpec) Values() url.Values {
	v := url.Values{}
	if q.IDGame != nil {
		v.Set("idGame", strconv.FormatInt(*q.IDGame, 10))
	}
	if q.IDClient != nil {
		v.Set("idClient", strconv.FormatInt(*q.IDClient, 10))
	}
	if q.Date != nil {
		v.Set("date", q.Date.String())
	}
	return v
}

// LoanPage 后端返回的分页结果
type LoanPage struct {
	Content       []models.Loan `json:"content"`
	TotalElements int64         `json:"totalElements"`
}

// LoanSearch 列表页的过滤状态。改任何过滤条件都会把页码归零：
// 新结果集可能根本没有旧页码那一页
type LoanSearch struct {
	game   *models.Game
	client *models.Client
	date   *models.Date

	pageNumber int
	pageSize   int
}

func NewLoanSearch(pageSize int) *LoanSearch {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &LoanSearch{pageSize: pageSize}
}

func (s *LoanSearch) FilterGame(g *models.Game) {
	s.game = g
	s.pageNumber = 0
}

func (s *LoanSearch) FilterClient(c *models.Client) {
	s.client = c
	s.pageNumber = 0
}

// FilterDate 过滤“这一天处于借出中”的记录；时分秒在这里就被规范掉
func (s *LoanSearch) FilterDate(t *time.Time) {
	if t == nil {
		s.date = nil
	} else {
		d := models.DateOf(*t)
		s.date = &d
	}
	s.pageNumber = 0
}

func (s *LoanSearch) ClearFilters() {
	s.game, s.client, s.date = nil, nil, nil
	s.pageNumber = 0
}

func (s *LoanSearch) SetPage(n int) {
	if n >= 0 {
		s.pageNumber = n
	}
}

func (s *LoanSearch) SetPageSize(n int) {
	if n > 0 {
		s.pageSize = n
	}
}

func (s *LoanSearch) Page() int     { return s.pageNumber }
func (s *LoanSearch) PageSize() int { return s.pageSize }

// Spec 固化当前过滤+分页状态
func (s *LoanSearch) Spec() QuerySpec {
	q := QuerySpec{Pageable: PageableRequest{PageNumber: s.pageNumber, PageSize: s.pageSize}}
	if s.game != nil {
		id := s.game.ID
		q.IDGame = &id
	}
	if s.client != nil {
		id := s.client.ID
		q.IDClient = &id
	}
	if s.date != nil {
		d := *s.date
		q.Date = &d
	}
	return q
}
