package dao

import (
	"Club/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// CreateUser 创建用户，凭证为空时下发一个新的 accesstoken
func (u *Users) CreateUser(ctx context.Context, user *models.Users) error {
	if user.AccessToken == "" {
		user.AccessToken = uuid.NewString()
	}
	return u.Create(ctx, user)
}

// FindByLoginname 登录名查询
func (u *Users) FindByLoginname(ctx context.Context, loginname string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "loginname = ?", loginname)
}

// FindByAccessToken 凭证查询
func (u *Users) FindByAccessToken(ctx context.Context, token string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "access_token = ?", token)
}

// BatchGetByIDs 批量查用户，返回 id -> user
func (u *Users) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Users, error) {
	result := make(map[uint64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}

// IncrScoreAndTopicCount 加积分、加发帖数，库内原子自增
func (u *Users) IncrScoreAndTopicCount(ctx context.Context, userID uint64, score, topics int) error {
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		UpdateColumns(map[string]any{
			"score":       gorm.Expr("score + ?", score),
			"topic_count": gorm.Expr("topic_count + ?", topics),
		}).Error
}
