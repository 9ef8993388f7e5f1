package db

import (
	"context"
	"errors"

	"Gin_postgres_redis_game_loans/models"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound  = errors.New("client does not exist")
	ErrClientNameTaken = errors.New("a client with that name already exists")
	ErrClientHasLoans  = errors.New("client still has loans")
)

// 编辑表单要整表（不分页），排序按名字稳定
func (r *Repo) ListClients(ctx context.Context) ([]models.Client, error) {
	var cs []models.Client
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&cs).Error
	return cs, err
}

func (r *Repo) FindClientByID(ctx context.Context, id int64) (*models.Client, error) {
	var c models.Client
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// SaveClient 建或整体替换；id 为 nil 表示新建。
// 查重和写入在同一个事务里，并发创建同名客户只能成功一个
func (r *Repo) SaveClient(ctx context.Context, id *int64, in *models.Client) (*models.Client, error) {
	var saved models.Client
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.Client{}).Where("LOWER(name) = LOWER(?)", in.Name)
		if id != nil {
			q = q.Where("id <> ?", *id)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrClientNameTaken
		}

		if id == nil {
			saved = models.Client{Name: in.Name}
			return tx.Create(&saved).Error
		}

		var c models.Client
		if err := tx.First(&c, "id = ?", *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		c.Name = in.Name
		if err := tx.Save(&c).Error; err != nil {
			return err
		}
		saved = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *Repo) DeleteClient(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Loan{}).Where("client_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrClientHasLoans
		}
		res := tx.Delete(&models.Client{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrClientNotFound
		}
		return nil
	})
}
