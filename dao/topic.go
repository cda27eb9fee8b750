package dao

import (
	"Club/models"
	"context"

	"gorm.io/gorm"
)

// 保留的版块，默认列表里不展示
var reservedTabs = []string{"job", "dev"}

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// 创建话题
func (d *Topic) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return d.Create(ctx, topic)
}

// GetTopicByID - 根据ID获取话题
func (d *Topic) GetTopicByID(ctx context.Context, topicID uint64) (*models.Topic, error) {
	return d.FindByID(ctx, topicID)
}

// ListByTab - 版块过滤 + 分页查询
// tab 为空或 all 时排除保留版块，good 查精华帖，其余按字面量精确匹配
func (d *Topic) ListByTab(ctx context.Context, tab string, page, limit int) ([]*models.Topic, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	q := d.Db.WithContext(ctx).Model(&models.Topic{})
	switch tab {
	case "", "all":
		q = q.Where("tab NOT IN ?", reservedTabs)
	case "good":
		q = q.Where("good = ?", true)
	default:
		// 未知版块不报错，按字面量过滤，查不到就是空列表
		q = q.Where("tab = ?", tab)
	}

	var topics []*models.Topic
	err := q.Order("top DESC, last_reply_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// ListByAuthor - 某作者最近的话题
func (d *Topic) ListByAuthor(ctx context.Context, authorID uint64, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("top DESC, last_reply_at DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// IncrVisitCount 浏览数 +1，库内原子自增，避免并发丢计数
func (d *Topic) IncrVisitCount(ctx context.Context, topicID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", topicID).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
}

// UpdateFields 只更新给定字段
func (d *Topic) UpdateFields(ctx context.Context, topicID uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", topicID).
		Updates(fields).Error
}
