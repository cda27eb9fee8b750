package service

import (
	"Club/config"
	"Club/dao"
	"Club/dao/cache"
	"Club/models"
	"Club/pkg/markdown"
	"Club/pkg/response"
	"Club/pkg/snowflake"
	"Club/types"
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// 发一帖加的积分
	ScorePerTopic = 5

	TitleMinLen = 5
	TitleMaxLen = 100
)

var _ ITopicService = (*TopicService)(nil)

type TopicService struct {
	Config    *config.Config
	TopicDAO  *dao.Topic
	ReplyDAO  *dao.Reply
	UserDAO   *dao.Users
	Ups       *cache.ReplyUpStorage
	Collects  *cache.CollectStorage
	AtService IAtService
	Renderer  markdown.Renderer
}

type ITopicService interface {
	ListTopics(ctx context.Context, req *types.ListTopicsRequest) ([]*types.TopicView, error)
	GetTopicDetail(ctx context.Context, topicID, viewerID uint64, mdrender bool) (*types.TopicDetailView, error)
	CreateTopic(ctx context.Context, req *types.CreateTopicRequest, userID uint64) (uint64, error)
	UpdateTopic(ctx context.Context, req *types.UpdateTopicRequest, userID uint64, isAdmin bool) (uint64, error)
}

func (ts *TopicService) ListTopics(ctx context.Context, req *types.ListTopicsRequest) ([]*types.TopicView, error) {
	mdrender := req.Mdrender != "false"

	topics, err := ts.TopicDAO.ListByTab(ctx, req.Tab, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return make([]*types.TopicView, 0), nil
	}

	authorIDs := make([]uint64, 0, len(topics))
	for _, topic := range topics {
		authorIDs = append(authorIDs, topic.AuthorID)
	}
	authors, err := ts.UserDAO.BatchGetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.TopicView, 0, len(topics))
	for _, topic := range topics {
		result = append(result, ts.projectTopic(topic, authors[topic.AuthorID], mdrender))
	}
	return result, nil
}

func (ts *TopicService) GetTopicDetail(ctx context.Context, topicID, viewerID uint64, mdrender bool) (*types.TopicDetailView, error) {
	topic, err := ts.TopicDAO.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, response.NewError(http.StatusNotFound, "此话题不存在或已被删除")
	}

	// 并发取作者和回复
	var (
		author   *models.Users
		replies  []*models.Reply
		authErr  error
		replyErr error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		author, authErr = ts.UserDAO.FindByID(ctx, topic.AuthorID)
	}()
	go func() {
		defer wg.Done()
		replies, replyErr = ts.ReplyDAO.ListByTopic(ctx, topic.ID)
	}()
	wg.Wait()
	if authErr != nil {
		return nil, authErr
	}
	if replyErr != nil {
		return nil, replyErr
	}

	// 每次成功取详情 visit_count 无条件 +1，写库用原子自增，
	// 展示值在读到的旧值上本地补 1
	if err := ts.TopicDAO.IncrVisitCount(ctx, topic.ID); err != nil {
		return nil, err
	}

	view := &types.TopicDetailView{
		TopicView: *ts.projectTopic(topic, author, mdrender),
	}
	view.VisitCount = topic.VisitCount + 1

	replyViews, err := ts.projectReplies(ctx, replies, viewerID, mdrender)
	if err != nil {
		return nil, err
	}
	view.Replies = replyViews

	// 匿名访客永远是未收藏
	if viewerID > 0 {
		collected, err := ts.Collects.IsCollected(ctx, viewerID, topic.ID)
		if err != nil {
			return nil, err
		}
		view.IsCollect = collected
	}

	return view, nil
}

// CreateTopic 校验 → 落库 → 加积分 → @通知，后一步失败不回滚前面的写入
func (ts *TopicService) CreateTopic(ctx context.Context, req *types.CreateTopicRequest, userID uint64) (uint64, error) {
	if err := ts.validateTopicFields(req.Title, req.Tab, req.Content); err != nil {
		return 0, err
	}

	now := time.Now()
	topic := &models.Topic{
		ID:          snowflake.GenID(),
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
		Tab:         req.Tab,
		LastReplyAt: now,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if err := ts.TopicDAO.CreateTopic(ctx, topic); err != nil {
		return 0, err
	}

	// 发帖人加积分、加发表主题数
	if err := ts.UserDAO.IncrScoreAndTopicCount(ctx, userID, ScorePerTopic, 1); err != nil {
		return 0, err
	}

	// 通知被@的用户
	if err := ts.AtService.SendMessageToMentionUsers(ctx, req.Content, topic.ID, userID); err != nil {
		return 0, err
	}

	return topic.ID, nil
}

// UpdateTopic 仅作者本人或管理员可编辑，只合并 title/tab/content
func (ts *TopicService) UpdateTopic(ctx context.Context, req *types.UpdateTopicRequest, userID uint64, isAdmin bool) (uint64, error) {
	if err := ts.validateTopicFields(req.Title, req.Tab, req.Content); err != nil {
		return 0, err
	}

	topic, err := ts.TopicDAO.GetTopicByID(ctx, req.TopicID)
	if err != nil {
		return 0, err
	}
	if topic == nil {
		return 0, response.NewError(http.StatusNotFound, "此话题不存在或已被删除")
	}
	if topic.AuthorID != userID && !isAdmin {
		return 0, response.NewError(http.StatusForbidden, "对不起，你不能编辑此话题")
	}

	// 作者、计数、创建时间不动
	err = ts.TopicDAO.UpdateFields(ctx, topic.ID, map[string]any{
		"title":     req.Title,
		"tab":       req.Tab,
		"content":   req.Content,
		"update_at": time.Now(),
	})
	if err != nil {
		return 0, err
	}

	// 编辑后按新正文重新扫描@，内容没变也会再发一遍
	if err := ts.AtService.SendMessageToMentionUsers(ctx, req.Content, topic.ID, userID); err != nil {
		return 0, err
	}

	return topic.ID, nil
}

func (ts *TopicService) validateTopicFields(title, tab, content string) error {
	titleLen := utf8.RuneCountInString(title)
	if titleLen < TitleMinLen || titleLen > TitleMaxLen {
		return response.NewError(http.StatusBadRequest, "标题字数必须在5到100之间")
	}
	if ts.Config == nil || ts.Config.App == nil || !ts.Config.App.HasTab(tab) {
		return response.NewError(http.StatusBadRequest, "版块不存在")
	}
	if content == "" {
		return response.NewError(http.StatusBadRequest, "内容不能为空")
	}
	return nil
}

// projectTopic 白名单投影，实体上没点名的字段一律丢弃
func (ts *TopicService) projectTopic(topic *models.Topic, author *models.Users, mdrender bool) *types.TopicView {
	view := &types.TopicView{
		ID:          topic.ID,
		AuthorID:    topic.AuthorID,
		Tab:         topic.Tab,
		Content:     ts.renderContent(topic.Content, mdrender),
		Title:       topic.Title,
		LastReplyAt: topic.LastReplyAt,
		Good:        topic.Good,
		Top:         topic.Top,
		ReplyCount:  topic.ReplyCount,
		VisitCount:  topic.VisitCount,
		CreateAt:    topic.CreateAt,
	}
	if author != nil {
		view.Author = types.AuthorView{
			Loginname: author.Loginname,
			AvatarURL: author.AvatarURL,
		}
	}
	return view
}

func (ts *TopicService) projectReplies(ctx context.Context, replies []*models.Reply, viewerID uint64, mdrender bool) ([]*types.ReplyView, error) {
	result := make([]*types.ReplyView, 0, len(replies))
	if len(replies) == 0 {
		return result, nil
	}

	replyIDs := make([]uint64, 0, len(replies))
	authorIDs := make([]uint64, 0, len(replies))
	for _, reply := range replies {
		replyIDs = append(replyIDs, reply.ID)
		authorIDs = append(authorIDs, reply.AuthorID)
	}

	// 并发取回复作者和点赞记录
	var (
		authors map[uint64]*models.Users
		ups     []*models.ReplyUp
		authErr error
		upErr   error
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		authors, authErr = ts.UserDAO.BatchGetByIDs(ctx, authorIDs)
	}()
	go func() {
		defer wg.Done()
		ups, upErr = ts.Ups.ListByReplyIDs(ctx, replyIDs)
	}()
	wg.Wait()
	if authErr != nil {
		return nil, authErr
	}
	if upErr != nil {
		return nil, upErr
	}

	upsMap := make(map[uint64][]uint64, len(replies))
	for _, up := range ups {
		upsMap[up.ReplyID] = append(upsMap[up.ReplyID], up.UserID)
	}

	for _, reply := range replies {
		upUserIDs := upsMap[reply.ID]
		view := &types.ReplyView{
			ID:       reply.ID,
			Content:  ts.renderContent(reply.Content, mdrender),
			Ups:      make([]string, 0, len(upUserIDs)),
			CreateAt: reply.CreateAt,
		}
		for _, uid := range upUserIDs {
			view.Ups = append(view.Ups, strconv.FormatUint(uid, 10))
		}
		if reply.ReplyID != 0 {
			parentID := strconv.FormatUint(reply.ReplyID, 10)
			view.ReplyID = &parentID
		}
		if author := authors[reply.AuthorID]; author != nil {
			view.Author = types.AuthorView{
				Loginname: author.Loginname,
				AvatarURL: author.AvatarURL,
			}
		}
		// 匿名访客永远是 false
		if viewerID > 0 {
			for _, uid := range upUserIDs {
				if uid == viewerID {
					view.IsUped = true
					break
				}
			}
		}
		result = append(result, view)
	}
	return result, nil
}

func (ts *TopicService) renderContent(content string, mdrender bool) string {
	if !mdrender || ts.Renderer == nil {
		return content
	}
	return ts.Renderer.Render(content)
}
