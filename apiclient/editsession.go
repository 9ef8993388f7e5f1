// apiclient/editsession.go
package apiclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"Gin_postgres_redis_game_loans/models"
	"Gin_postgres_redis_game_loans/rules"
)

// Notifier 对应 UI 的 snackbar：只管把文案亮多久，不参与正确性
type Notifier interface {
	Notify(message string, duration time.Duration)
}

// Confirmer 对应 UI 的确认弹窗，删除前必须拿到肯定答复
type Confirmer interface {
	Ask(title, description string) bool
}

// 和 snackbar 的默认时长保持一致
const NotifyDuration = 5 * time.Second

type SessionState int

const (
	StateLoading SessionState = iota
	StateReady
	StateSaving
	StateClosed
)

var (
	ErrSaveInFlight = errors.New("a save is already in flight")
	ErrNotReady     = errors.New("session is not ready")
)

// EditSession 一次借出编辑会话。打开时浅拷贝原记录当草稿，
// save 成功之前绝不碰列表里的原记录；失败时草稿原样保留
type EditSession struct {
	api      *Client
	notifier Notifier

	mu        sync.Mutex
	state     SessionState
	persisted bool // 明确的 draft/persisted 标记，不靠 id 是否为零猜
	draft     models.Loan
	clients   []models.Client
	games     []models.Game
}

// NewEditSession existing 为 nil 表示新建草稿
func NewEditSession(api *Client, notifier Notifier, existing *models.Loan) *EditSession {
	s := &EditSession{api: api, notifier: notifier, state: StateLoading}
	if existing != nil {
		s.draft = *existing
		s.persisted = true
	}
	return s
}

// Load 两个参考列表并行拉取，互不依赖、完成顺序不定；
// 都到了之后把草稿里的 game/client 换成最新记录（借出里嵌的可能是旧拷贝）
func (s *EditSession) Load(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		clients []models.Client
		games   []models.Game
		cErr    error
		gErr    error
	)
	wg.Add(2)
	go func() { defer wg.Done(); clients, cErr = s.api.Clients(ctx) }()
	go func() { defer wg.Done(); games, gErr = s.api.Games(ctx) }()
	wg.Wait()

	if cErr != nil {
		return cErr
	}
	if gErr != nil {
		return gErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients, s.games = clients, games
	if s.draft.Client != nil {
		for i := range clients {
			if clients[i].ID == s.draft.Client.ID {
				s.draft.Client = &clients[i]
				break
			}
		}
	}
	if s.draft.Game != nil {
		for i := range games {
			if games[i].ID == s.draft.Game.ID {
				s.draft.Game = &games[i]
				break
			}
		}
	}
	s.state = StateReady
	return nil
}

func (s *EditSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *EditSession) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}

// Draft 可变草稿，改动只在本地，save 成功才会落地
func (s *EditSession) Draft() *models.Loan { return &s.draft }

func (s *EditSession) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients
}

func (s *EditSession) Games() []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}

// Save 先本地校验（失败不发任何请求），过了再提交。
// 后端有最终裁定权：本地通过也可能因为并发冲突被拒，
// 被拒时草稿保留、文案走 Notifier，回到 Ready 等用户改
func (s *EditSession) Save(ctx context.Context) (*models.Loan, error) {
	s.mu.Lock()
	switch s.state {
	case StateSaving:
		s.mu.Unlock()
		return nil, ErrSaveInFlight
	case StateReady:
		// ok
	default:
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	draft := s.draft
	persisted := s.persisted
	s.state = StateSaving
	s.mu.Unlock()

	if err := rules.ValidateLoan(&draft); err != nil {
		s.fail(err.Error())
		return nil, err
	}

	saved, err := s.api.SaveLoan(ctx, &draft, persisted)
	if err != nil {
		s.fail(MessageOf(err))
		return nil, err
	}

	s.mu.Lock()
	if s.state == StateSaving { // 中途被 Close 就不再转移状态
		s.draft = *saved
		s.persisted = true
		s.state = StateClosed
	}
	s.mu.Unlock()
	return saved, nil
}

// Close 放弃草稿，不产生任何副作用；save 进行中关掉也只是忽略结果
func (s *EditSession) Close() {
	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()
}

// fail 回到 Ready 等用户改；会话已经 Close 的话连文案都不弹，
// 关掉之后不允许再有任何可见副作用
func (s *EditSession) fail(msg string) {
	s.mu.Lock()
	closed := s.state == StateClosed
	if s.state == StateSaving {
		s.state = StateReady
	}
	s.mu.Unlock()
	if closed || s.notifier == nil {
		return
	}
	s.notifier.Notify(msg, NotifyDuration)
}

// DeleteLoan 确认弹窗给了肯定答复才真的删。成功后调用方必须重新跑
// 分页查询，totalElements 和页内容都可能已经变了，不要本地删行
func DeleteLoan(ctx context.Context, api *Client, confirm Confirmer, notifier Notifier, loanID int64) (bool, error) {
	if confirm != nil && !confirm.Ask("Delete loan", "The loan data will be lost. Delete the loan?") {
		return false, nil
	}
	if err := api.DeleteLoan(ctx, loanID); err != nil {
		if notifier != nil {
			notifier.Notify(MessageOf(err), NotifyDuration)
		}
		return false, err
	}
	return true, nil
}

// SaveClientChecked 客户编辑：先对快照做大小写不敏感查重，
// 省掉一次必败的往返。快照可能是旧的，撞名最终由后端裁定
func SaveClientChecked(ctx context.Context, api *Client, candidate *models.Client, persisted bool, snapshot []models.Client) (*models.Client, error) {
	if candidate.Name == "" {
		return nil, rules.ErrNameRequired
	}
	if dup := rules.FindDuplicateClientName(candidate.Name, candidate.ID, snapshot); dup != nil {
		return nil, rules.ErrDuplicateName
	}
	return api.SaveClient(ctx, candidate, persisted)
}
