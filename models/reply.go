package models

import "time"

// Reply 回复
type Reply struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	TopicID  uint64 `gorm:"index;not null" json:"topic_id,string"`
	AuthorID uint64 `gorm:"index;not null" json:"author_id,string"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// ReplyID 上级回复ID (0表示一级回复)
	ReplyID  uint64    `gorm:"default:0" json:"reply_id,string"`
	CreateAt time.Time `gorm:"index" json:"create_at"`
}

func (Reply) TableName() string {
	return "replies"
}

// ReplyUp 回复点赞表，(reply_id, user_id) 唯一，保证同一用户最多点一次
type ReplyUp struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReplyID  uint64    `gorm:"index:uk_reply_user,unique;not null" json:"reply_id"`
	UserID   uint64    `gorm:"index:uk_reply_user,unique;not null" json:"user_id"`
	CreateAt time.Time `json:"create_at"`
}

func (ReplyUp) TableName() string {
	return "reply_ups"
}
