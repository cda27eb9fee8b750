package models

import "time"

const MessageTypeAt = "at"

// Message 站内消息，@提及产生的通知落在这张表
type Message struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Type string `gorm:"type:varchar(16);not null" json:"type"`
	// MasterID 收件人
	MasterID uint64 `gorm:"index;not null" json:"master_id,string"`
	// AuthorID 触发通知的人
	AuthorID uint64    `gorm:"not null" json:"author_id,string"`
	TopicID  uint64    `gorm:"index;not null" json:"topic_id,string"`
	HasRead  bool      `gorm:"default:false" json:"has_read"`
	CreateAt time.Time `json:"create_at"`
}

func (Message) TableName() string {
	return "messages"
}
