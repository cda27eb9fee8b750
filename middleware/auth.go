package middleware

import (
	"Club/config"
	"Club/dao"
	"Club/models"
	"Club/pkg/context"
	"Club/pkg/jwt"
	"Club/pkg/log"
	"Club/pkg/response"
	gocontext "context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	authCacheKey = "auth:token:%s"
	authCacheTTL = 10 * time.Minute
)

// Auth 把外部下发的凭证解析成请求者身份
// 支持 accesstoken 参数和 Authorization Bearer 两种形式
type Auth struct {
	Config *config.Config
	Users  *dao.Users
	Redis  *redis.Client
}

func NewAuth(conf *config.Config, users *dao.Users, rdb *redis.Client) *Auth {
	return &Auth{Config: conf, Users: users, Redis: rdb}
}

// Required 必须带有效凭证
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := a.resolve(c)
		if user == nil {
			response.Abort(c, http.StatusUnauthorized, "错误的 accessToken")
			return
		}
		a.bind(c, user)
		c.Next()
	}
}

// Optional 凭证无效按匿名访客处理，不拦截
func (a *Auth) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := a.resolve(c); user != nil {
			a.bind(c, user)
		}
		c.Next()
	}
}

func (a *Auth) bind(c *gin.Context, user *models.Users) {
	c.Set(context.CtxUserID, user.ID)
	c.Set(context.CtxIsAdmin, user.IsAdmin)
	c.Set(context.CtxLoginname, user.Loginname)
	c.Set(context.CtxAvatarURL, user.AvatarURL)
}

func (a *Auth) resolve(c *gin.Context) *models.Users {
	ctx := c.Request.Context()

	if token := c.Query("accesstoken"); token != "" {
		return a.userByAccessToken(ctx, token)
	}
	if token := c.PostForm("accesstoken"); token != "" {
		return a.userByAccessToken(ctx, token)
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}
	claims, err := jwt.ParseToken([]byte(a.Config.Jwt.Secret), "access", parts[1])
	if err != nil {
		return nil
	}
	user, err := a.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		log.L.Error("load user by jwt failed", zap.Error(err))
		return nil
	}
	return user
}

// userByAccessToken 先查 Redis 缓存，未命中回源数据库再回填
func (a *Auth) userByAccessToken(ctx gocontext.Context, token string) *models.Users {
	key := fmt.Sprintf(authCacheKey, token)

	if a.Redis != nil {
		if raw, err := a.Redis.Get(ctx, key).Bytes(); err == nil {
			var cached models.Users
			if json.Unmarshal(raw, &cached) == nil {
				return &cached
			}
		}
	}

	user, err := a.Users.FindByAccessToken(ctx, token)
	if err != nil {
		log.L.Error("load user by accesstoken failed", zap.Error(err))
		return nil
	}
	if user == nil {
		return nil
	}

	if a.Redis != nil {
		if raw, err := json.Marshal(user); err == nil {
			// 回填失败不影响本次请求
			a.Redis.Set(ctx, key, raw, authCacheTTL)
		}
	}
	return user
}
