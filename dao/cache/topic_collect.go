package cache

import (
	"Club/dao"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 收藏状态缓存过期时间
const collectExpireAt = 10 * time.Minute

type CollectStorage struct {
	redis *redis.Client
	dao   *dao.TopicCollect
}

func NewCollectStorage(rds *redis.Client, d *dao.TopicCollect) *CollectStorage {
	return &CollectStorage{redis: rds, dao: d}
}

// IsCollected 先查缓存，未命中回源数据库再回填
func (s *CollectStorage) IsCollected(ctx context.Context, userID, topicID uint64) (bool, error) {
	key := s.name(userID, topicID)

	if s.redis != nil {
		if val, err := s.redis.Get(ctx, key).Result(); err == nil {
			return val == "1", nil
		}
	}

	collected, err := s.dao.IsCollected(ctx, userID, topicID)
	if err != nil {
		return false, err
	}

	if s.redis != nil {
		val := "0"
		if collected {
			val = "1"
		}
		// 回填失败不影响本次请求
		s.redis.Set(ctx, key, val, collectExpireAt)
	}

	return collected, nil
}

// 收藏状态缓存
// topic:collect:用户ID:话题ID
func (s *CollectStorage) name(userID, topicID uint64) string {
	return fmt.Sprintf("topic:collect:%d:%d", userID, topicID)
}
