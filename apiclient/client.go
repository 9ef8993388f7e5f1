// apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"Gin_postgres_redis_game_loans/models"
	"Gin_postgres_redis_game_loans/query"

	"github.com/google/uuid"
)

// Client 后端 REST API 的薄封装；只管传输，不做业务判断，
// 本地校验在 rules，编辑流程在 EditSession
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

// 参考数据（整表，不过滤）

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/client", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Games(ctx context.Context) ([]models.Game, error) {
	var out []models.Game
	if err := c.do(ctx, http.MethodGet, "/game", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchLoans 过滤在 URL，分页在 body，和后端的 FindPage 对齐
func (c *Client) SearchLoans(ctx context.Context, spec query.QuerySpec) (query.LoanPage, error) {
	var page query.LoanPage
	err := c.do(ctx, http.MethodPost, "/loan", spec.Values(), spec.Pageable, &page)
	return page, err
}

// SaveLoan 新建或整体替换；persisted 由调用方明说，
// 不拿“id 是不是 0”来猜这条记录有没有保存过
func (c *Client) SaveLoan(ctx context.Context, l *models.Loan, persisted bool) (*models.Loan, error) {
	path := "/loan"
	if persisted {
		path += "/" + strconv.FormatInt(l.ID, 10)
	}
	var saved models.Loan
	if err := c.do(ctx, http.MethodPut, path, nil, l, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/loan/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) SaveClient(ctx context.Context, cl *models.Client, persisted bool) (*models.Client, error) {
	path := "/client"
	if persisted {
		path += "/" + strconv.FormatInt(cl.ID, 10)
	}
	var saved models.Client
	if err := c.do(ctx, http.MethodPut, path, nil, cl, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/client/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		// 传输层失败：没有响应体可挖
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode), Body: data}
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}
