package handler

import (
	"Club/config"
	"Club/middleware"
	"Club/pkg/context"
	"Club/pkg/response"
	"Club/service"
	"Club/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Config      *config.Config
	Auth        *middleware.Auth
	UserService service.IUserService
}

func (uh *UserHandler) RegisterRouter(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.GET("/user/:loginname", context.Wrap(uh.GetUser)) // 用户主页
	v1.POST("/accesstoken", uh.Auth.Required(), context.Wrap(uh.VerifyToken))
}

func (uh *UserHandler) GetUser(c *gin.Context) error {
	loginname := c.Param("loginname")

	profile, err := uh.UserService.GetUserByLoginname(c.Request.Context(), loginname)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// VerifyToken 凭证有效时回显身份信息，无效请求到不了这里
func (uh *UserHandler) VerifyToken(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	c.JSON(http.StatusOK, types.VerifyTokenResponse{
		Success:   true,
		Loginname: c.GetString(context.CtxLoginname),
		ID:        userID,
		AvatarURL: c.GetString(context.CtxAvatarURL),
	})
	return nil
}
