package cache

import (
	"Club/dao"
	"Club/models"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 回复点赞缓存过期时间
const replyUpsExpireAt = 10 * time.Minute

type ReplyUpStorage struct {
	redis *redis.Client
	dao   *dao.ReplyUp
}

func NewReplyUpStorage(rds *redis.Client, d *dao.ReplyUp) *ReplyUpStorage {
	return &ReplyUpStorage{redis: rds, dao: d}
}

// ListByReplyIDs 批量取点赞记录，缓存优先，缺的整批回源数据库后回填
func (s *ReplyUpStorage) ListByReplyIDs(ctx context.Context, replyIDs []uint64) ([]*models.ReplyUp, error) {
	if len(replyIDs) == 0 {
		return nil, nil
	}

	result := make([]*models.ReplyUp, 0, len(replyIDs))
	var missing []uint64

	if s.redis == nil {
		missing = replyIDs
	} else {
		keys := make([]string, 0, len(replyIDs))
		for _, id := range replyIDs {
			keys = append(keys, s.name(id))
		}
		vals, err := s.redis.MGet(ctx, keys...).Result()
		if err != nil {
			missing = replyIDs
		} else {
			for i, v := range vals {
				raw, ok := v.(string)
				if !ok {
					missing = append(missing, replyIDs[i])
					continue
				}
				var uids []uint64
				if json.Unmarshal([]byte(raw), &uids) != nil {
					missing = append(missing, replyIDs[i])
					continue
				}
				for _, uid := range uids {
					result = append(result, &models.ReplyUp{ReplyID: replyIDs[i], UserID: uid})
				}
			}
		}
	}

	if len(missing) == 0 {
		return result, nil
	}

	ups, err := s.dao.ListByReplyIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	result = append(result, ups...)

	if s.redis != nil {
		// 没有点赞的回复也回填空列表，避免反复穿透
		grouped := make(map[uint64][]uint64, len(missing))
		for _, id := range missing {
			grouped[id] = make([]uint64, 0)
		}
		for _, up := range ups {
			grouped[up.ReplyID] = append(grouped[up.ReplyID], up.UserID)
		}
		pipe := s.redis.Pipeline()
		for id, uids := range grouped {
			if raw, err := json.Marshal(uids); err == nil {
				pipe.Set(ctx, s.name(id), raw, replyUpsExpireAt)
			}
		}
		_, _ = pipe.Exec(ctx)
	}

	return result, nil
}

// 点赞记录缓存
// topic:reply:ups:回复ID
func (s *ReplyUpStorage) name(replyID uint64) string {
	return fmt.Sprintf("topic:reply:ups:%d", replyID)
}
