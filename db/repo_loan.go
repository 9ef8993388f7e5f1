package db

import (
	"context"
	"errors"

	"Gin_postgres_redis_game_loans/models"
	"Gin_postgres_redis_game_loans/query"
	"Gin_postgres_redis_game_loans/rules"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 同一客户同一天最多同时在借的游戏数
const MaxLoansPerClient = 2

var (
	ErrLoanNotFound    = errors.New("loan does not exist")
	ErrGameUnavailable = errors.New("game is already on loan in that date range")
	ErrClientLoanLimit = errors.New("client already has 2 games on loan in that date range")
)

// SearchLoans 过滤+分页。date 的语义是“这一天处于借出中”：
// start_date <= date AND end_date >= date
func (r *Repo) SearchLoans(ctx context.Context, spec query.QuerySpec) (query.LoanPage, error) {
	page, size := NormalizePage(spec.Pageable.PageNumber, spec.Pageable.PageSize)

	tx := r.DB.WithContext(ctx).Model(&models.Loan{})
	if spec.IDGame != nil {
		tx = tx.Where("game_id = ?", *spec.IDGame)
	}
	if spec.IDClient != nil {
		tx = tx.Where("client_id = ?", *spec.IDClient)
	}
	if spec.Date != nil {
		tx = tx.Where("start_date <= ? AND end_date >= ?", *spec.Date, *spec.Date)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return query.LoanPage{}, err
	}

	loans := make([]models.Loan, 0, size)
	if err := tx.Preload("Game").Preload("Client").
		Order("start_date DESC, id DESC").
		Offset(page * size).Limit(size).
		Find(&loans).Error; err != nil {
		return query.LoanPage{}, err
	}
	return query.LoanPage{Content: loans, TotalElements: total}, nil
}

// 闭区间重叠：start <= end' AND end >= start'；excludeID 在编辑时排除自己
func overlapping(tx *gorm.DB, start, end models.Date, excludeID int64) *gorm.DB {
	tx = tx.Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	return tx
}

// SaveLoan 建或整体替换。全部冲突判定在一个事务里：
// 客户端本地校验通过的请求，撞上并发编辑仍会在这里被拒
func (r *Repo) SaveLoan(ctx context.Context, id *int64, draft *models.Loan) (*models.Loan, error) {
	if err := rules.ValidateLoan(draft); err != nil {
		return nil, err
	}

	var saved models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住游戏行，把同一游戏的并发借出串行化
		var g models.Game
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&g, "id = ?", draft.Game.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		var cl models.Client
		if err := tx.First(&cl, "id = ?", draft.Client.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		var exclude int64
		if id != nil {
			exclude = *id
		}

		var n int64
		if err := overlapping(tx.Model(&models.Loan{}).Where("game_id = ?", g.ID),
			draft.StartDate, draft.EndDate, exclude).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrGameUnavailable
		}

		if err := overlapping(tx.Model(&models.Loan{}).Where("client_id = ?", cl.ID),
			draft.StartDate, draft.EndDate, exclude).Count(&n).Error; err != nil {
			return err
		}
		if n >= MaxLoansPerClient {
			return ErrClientLoanLimit
		}

		if id == nil {
			saved = models.Loan{
				GameID: g.ID, Game: &g,
				ClientID: cl.ID, Client: &cl,
				StartDate: draft.StartDate, EndDate: draft.EndDate,
			}
			return tx.Omit(clause.Associations).Create(&saved).Error
		}

		var l models.Loan
		if err := tx.First(&l, "id = ?", *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return err
		}
		l.GameID, l.Game = g.ID, &g
		l.ClientID, l.Client = cl.ID, &cl
		l.StartDate, l.EndDate = draft.StartDate, draft.EndDate
		if err := tx.Omit(clause.Associations).Save(&l).Error; err != nil {
			return err
		}
		saved = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *Repo) DeleteLoan(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Delete(&models.Loan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLoanNotFound
	}
	return nil
}
