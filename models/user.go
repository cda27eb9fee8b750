package models

import "time"

// Users 用户表
type Users struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Loginname      string `gorm:"type:varchar(64);uniqueIndex:idx_users_loginname;not null" json:"loginname"`
	AvatarURL      string `gorm:"type:varchar(255);default:''" json:"avatar_url"`
	GithubUsername string `gorm:"type:varchar(64);default:''" json:"github_username"`

	// 统计数据，本服务内只增不减
	Score      uint32 `gorm:"default:0" json:"score"`
	TopicCount uint32 `gorm:"default:0" json:"topic_count"`
	ReplyCount uint32 `gorm:"default:0" json:"reply_count"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	// AccessToken 外部认证体系下发的凭证，永远不进响应
	AccessToken string `gorm:"type:varchar(64);uniqueIndex" json:"-"`

	CreateAt time.Time `json:"create_at"`
	UpdateAt time.Time `json:"update_at"`
}

func (Users) TableName() string {
	return "users"
}
