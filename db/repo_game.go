package db

import (
	"context"
	"errors"
	"strings"

	"Gin_postgres_redis_game_loans/models"

	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("game does not exist")

// ListGames 整表列表，可按标题关键词过滤
func (r *Repo) ListGames(ctx context.Context, title string) ([]models.Game, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Game{})
	if title = strings.TrimSpace(title); title != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}
	var gs []models.Game
	err := tx.Order("title ASC").Find(&gs).Error
	return gs, err
}

func (r *Repo) FindGameByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.DB.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

// SaveGame 建或整体替换；id 为 nil 表示新建
func (r *Repo) SaveGame(ctx context.Context, id *int64, in *models.Game) (*models.Game, error) {
	if id == nil {
		g := models.Game{Title: in.Title, Age: in.Age, Category: in.Category, Author: in.Author}
		if err := r.DB.WithContext(ctx).Create(&g).Error; err != nil {
			return nil, err
		}
		return &g, nil
	}

	var g models.Game
	if err := r.DB.WithContext(ctx).First(&g, "id = ?", *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	g.Title, g.Age, g.Category, g.Author = in.Title, in.Age, in.Category, in.Author
	if err := r.DB.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
