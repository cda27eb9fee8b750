package models

import "time"

// TopicCollect 话题收藏记录，存在即已收藏
// 唯一键: user_id + topic_id
type TopicCollect struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint64    `gorm:"index:uk_user_topic,unique;not null" json:"user_id"`
	TopicID  uint64    `gorm:"index:uk_user_topic,unique;not null" json:"topic_id"`
	CreateAt time.Time `json:"create_at"`
}

func (TopicCollect) TableName() string {
	return "topic_collects"
}
