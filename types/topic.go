package types

import "time"

// 列表查询请求
type ListTopicsRequest struct {
	Tab      string `form:"tab"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Mdrender string `form:"mdrender"`
}

// 发布话题请求
type CreateTopicRequest struct {
	Title   string `json:"title" binding:"required"`
	Tab     string `json:"tab" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// 编辑话题请求
type UpdateTopicRequest struct {
	TopicID uint64 `json:"topic_id,string" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Tab     string `json:"tab" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CreateTopicResponse struct {
	Success bool   `json:"success"`
	TopicID uint64 `json:"topic_id,string"`
}

type UpdateTopicResponse struct {
	Success bool   `json:"success"`
	TopicID uint64 `json:"topic_id,string"`
}

// AuthorView 作者信息，白名单投影，只有这两个字段会出响应
type AuthorView struct {
	Loginname string `json:"loginname"`
	AvatarURL string `json:"avatar_url"`
}

// TopicView 话题列表项，字段即白名单，实体上没列出的字段一律不出
type TopicView struct {
	ID          uint64     `json:"id,string"`
	AuthorID    uint64     `json:"author_id,string"`
	Tab         string     `json:"tab"`
	Content     string     `json:"content"`
	Title       string     `json:"title"`
	LastReplyAt time.Time  `json:"last_reply_at"`
	Good        bool       `json:"good"`
	Top         bool       `json:"top"`
	ReplyCount  uint32     `json:"reply_count"`
	VisitCount  uint32     `json:"visit_count"`
	CreateAt    time.Time  `json:"create_at"`
	Author      AuthorView `json:"author"`
}

// ReplyView 回复视图
// ups 和 reply_id 与其余 ID 一样输出十进制字符串，雪花 ID 超出 JS 安全整数范围
type ReplyView struct {
	ID      uint64     `json:"id,string"`
	Author  AuthorView `json:"author"`
	Content string     `json:"content"`
	Ups     []string   `json:"ups"`
	// ReplyID 一级回复为 null
	ReplyID  *string   `json:"reply_id"`
	CreateAt time.Time `json:"create_at"`
	IsUped   bool      `json:"is_uped"`
}

// TopicDetailView 话题详情 = 列表视图 + 回复 + 收藏状态
type TopicDetailView struct {
	TopicView
	Replies   []*ReplyView `json:"replies"`
	IsCollect bool         `json:"is_collect"`
}
