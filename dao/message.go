package dao

import (
	"Club/models"
	"context"

	"gorm.io/gorm"
)

type Message struct {
	Repo[models.Message]
}

func NewMessage(db *gorm.DB) *Message {
	return &Message{
		Repo: NewRepo[models.Message](db),
	}
}

func (d *Message) CreateMessage(ctx context.Context, msg *models.Message) error {
	return d.Create(ctx, msg)
}

// ListByMaster - 收件人的消息，新的在前
func (d *Message) ListByMaster(ctx context.Context, masterID uint64, limit int) ([]*models.Message, error) {
	var msgs []*models.Message
	err := d.Db.WithContext(ctx).
		Where("master_id = ?", masterID).
		Order("create_at DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
