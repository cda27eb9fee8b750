package service

import (
	"Club/dao"
	"Club/pkg/response"
	"Club/types"
	"context"
	"net/http"
)

// 用户主页展示的最近话题数
const recentTopicLimit = 5

var _ IUserService = (*UserService)(nil)

type UserService struct {
	UserDAO  *dao.Users
	TopicDAO *dao.Topic
}

type IUserService interface {
	GetUserByLoginname(ctx context.Context, loginname string) (*types.UserProfile, error)
}

func (us *UserService) GetUserByLoginname(ctx context.Context, loginname string) (*types.UserProfile, error) {
	user, err := us.UserDAO.FindByLoginname(ctx, loginname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	topics, err := us.TopicDAO.ListByAuthor(ctx, user.ID, recentTopicLimit)
	if err != nil {
		return nil, err
	}

	author := types.AuthorView{
		Loginname: user.Loginname,
		AvatarURL: user.AvatarURL,
	}
	recent := make([]*types.RecentTopicView, 0, len(topics))
	for _, topic := range topics {
		recent = append(recent, &types.RecentTopicView{
			ID:          topic.ID,
			LastReplyAt: topic.LastReplyAt,
			Title:       topic.Title,
			Author:      author,
		})
	}

	return &types.UserProfile{
		Loginname:      user.Loginname,
		AvatarURL:      user.AvatarURL,
		GithubUsername: user.GithubUsername,
		CreateAt:       user.CreateAt,
		Score:          user.Score,
		RecentTopics:   recent,
	}, nil
}
