package dao

import (
	"Club/models"
	"context"

	"gorm.io/gorm"
)

type ReplyUp struct {
	Repo[models.ReplyUp]
}

func NewReplyUp(db *gorm.DB) *ReplyUp {
	return &ReplyUp{
		Repo: NewRepo[models.ReplyUp](db),
	}
}

// ListByReplyIDs - 批量查一组回复的点赞记录
func (d *ReplyUp) ListByReplyIDs(ctx context.Context, replyIDs []uint64) ([]*models.ReplyUp, error) {
	if len(replyIDs) == 0 {
		return nil, nil
	}
	var ups []*models.ReplyUp
	err := d.Db.WithContext(ctx).
		Where("reply_id IN ?", replyIDs).
		Find(&ups).Error
	return ups, err
}
