package dao

import (
	"Club/models"
	"context"

	"gorm.io/gorm"
)

type Reply struct {
	Repo[models.Reply]
}

func NewReply(db *gorm.DB) *Reply {
	return &Reply{
		Repo: NewRepo[models.Reply](db),
	}
}

// ListByTopic - 话题下全部回复，按发布时间正序
func (d *Reply) ListByTopic(ctx context.Context, topicID uint64) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("create_at ASC").
		Find(&replies).Error
	return replies, err
}
