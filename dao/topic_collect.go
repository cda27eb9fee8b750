package dao

import (
	"Club/models"
	"context"

	"gorm.io/gorm"
)

type TopicCollect struct {
	Repo[models.TopicCollect]
}

func NewTopicCollect(db *gorm.DB) *TopicCollect {
	return &TopicCollect{
		Repo: NewRepo[models.TopicCollect](db),
	}
}

// IsCollected 是否已收藏
func (d *TopicCollect) IsCollected(ctx context.Context, userID, topicID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND topic_id = ?", userID, topicID)
}
