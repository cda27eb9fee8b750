package service

import (
	"Club/dao"
	"Club/models"
	"Club/pkg/log"
	"Club/pkg/snowflake"
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"
)

var atPattern = regexp.MustCompile(`@([a-zA-Z0-9\-_]+)`)

var _ IAtService = (*AtService)(nil)

type AtService struct {
	UserDAO    *dao.Users
	MessageDAO *dao.Message
}

type IAtService interface {
	SendMessageToMentionUsers(ctx context.Context, content string, topicID, authorID uint64) error
}

// fetchMentionNames 提取正文里 @ 到的登录名，去重，保留出现顺序
func fetchMentionNames(content string) []string {
	matches := atPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// SendMessageToMentionUsers 给正文里被@的用户落一条 at 消息
// @到不存在的用户直接跳过，@自己不通知
func (s *AtService) SendMessageToMentionUsers(ctx context.Context, content string, topicID, authorID uint64) error {
	for _, name := range fetchMentionNames(content) {
		user, err := s.UserDAO.FindByLoginname(ctx, name)
		if err != nil {
			return err
		}
		if user == nil || user.ID == authorID {
			continue
		}

		msg := &models.Message{
			ID:       snowflake.GenID(),
			Type:     models.MessageTypeAt,
			MasterID: user.ID,
			AuthorID: authorID,
			TopicID:  topicID,
			CreateAt: time.Now(),
		}
		if err := s.MessageDAO.CreateMessage(ctx, msg); err != nil {
			return err
		}
		log.L.Info("at message sent",
			zap.String("loginname", user.Loginname),
			zap.Uint64("topic_id", topicID),
		)
	}
	return nil
}
