package cache

import (
	"context"
	"encoding/json"
	"time"

	"Gin_postgres_redis_game_loans/models"

	"github.com/redis/go-redis/v9"
)

const (
	clientsKey = "ref:clients"
	gamesKey   = "ref:games"
)

// RefCache 把完整的 client/game 列表缓存在 Redis 里：
// 编辑表单每次打开都要拉整表，写操作时整键失效。
// Redis 不可用时一律当 miss，正确性不依赖缓存
type RefCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRefCache(rdb *redis.Client, ttl time.Duration) *RefCache {
	return &RefCache{rdb: rdb, ttl: ttl}
}

func (c *RefCache) GetClients(ctx context.Context) ([]models.Client, bool) {
	var cs []models.Client
	if !c.get(ctx, clientsKey, &cs) {
		return nil, false
	}
	return cs, true
}

func (c *RefCache) SetClients(ctx context.Context, cs []models.Client) error {
	return c.set(ctx, clientsKey, cs)
}

func (c *RefCache) InvalidateClients(ctx context.Context) error {
	return c.rdb.Del(ctx, clientsKey).Err()
}

func (c *RefCache) GetGames(ctx context.Context) ([]models.Game, bool) {
	var gs []models.Game
	if !c.get(ctx, gamesKey, &gs) {
		return nil, false
	}
	return gs, true
}

func (c *RefCache) SetGames(ctx context.Context, gs []models.Game) error {
	return c.set(ctx, gamesKey, gs)
}

func (c *RefCache) InvalidateGames(ctx context.Context) error {
	return c.rdb.Del(ctx, gamesKey).Err()
}

// InvalidateAll 双键一起删（比如导入数据之后）
func (c *RefCache) InvalidateAll(ctx context.Context) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, clientsKey)
	pipe.Del(ctx, gamesKey)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RefCache) get(ctx context.Context, key string, out any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

func (c *RefCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
