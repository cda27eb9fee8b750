package models

import "time"

// Topic 主题帖
type Topic struct {
	// 显式关闭自增，ID 由雪花算法生成
	ID       uint64 `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	AuthorID uint64 `gorm:"index;not null" json:"author_id,string"` // 作者，创建后不可变更
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Tab      string `gorm:"type:varchar(32);index;not null" json:"tab"` // 所属版块

	// 运营位
	Good bool `gorm:"default:false;index" json:"good"` // 精华帖
	Top  bool `gorm:"default:false;index" json:"top"`  // 置顶，列表第一排序键

	// 统计数据，只增不减
	ReplyCount uint32 `gorm:"default:0" json:"reply_count"`
	VisitCount uint32 `gorm:"default:0" json:"visit_count"`

	LastReplyAt time.Time `gorm:"index" json:"last_reply_at"`
	CreateAt    time.Time `json:"create_at"`
	UpdateAt    time.Time `json:"update_at"`
}

func (Topic) TableName() string {
	return "topics"
}
