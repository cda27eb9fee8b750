package context

import (
	"Club/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxIsAdmin   = "is_admin"
	CtxLoginname = "loginname"
	CtxAvatarURL = "avatar_url"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// OptionalUserID 匿名访问时返回 0
func OptionalUserID(c *gin.Context) uint64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}

func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(CtxIsAdmin)
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}
