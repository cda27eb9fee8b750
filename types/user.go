package types

import "time"

// RecentTopicView 用户主页里的话题条目
type RecentTopicView struct {
	ID          uint64     `json:"id,string"`
	LastReplyAt time.Time  `json:"last_reply_at"`
	Title       string     `json:"title"`
	Author      AuthorView `json:"author"`
}

// UserProfile 用户主页
type UserProfile struct {
	Loginname      string             `json:"loginname"`
	AvatarURL      string             `json:"avatar_url"`
	GithubUsername string             `json:"githubUsername"`
	CreateAt       time.Time          `json:"create_at"`
	Score          uint32             `json:"score"`
	RecentTopics   []*RecentTopicView `json:"recent_topics"`
}

// VerifyTokenResponse 凭证校验响应
type VerifyTokenResponse struct {
	Success   bool   `json:"success"`
	Loginname string `json:"loginname"`
	ID        uint64 `json:"id,string"`
	AvatarURL string `json:"avatar_url"`
}
