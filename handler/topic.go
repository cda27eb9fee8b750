package handler

import (
	"Club/config"
	"Club/middleware"
	"Club/pkg/context"
	"Club/pkg/response"
	"Club/service"
	"Club/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	Config       *config.Config
	Auth         *middleware.Auth
	TopicService service.ITopicService
}

func (th *TopicHandler) RegisterRouter(r gin.IRouter) {
	authorize := th.Auth.Required()
	v1 := r.Group("/v1")
	v1.GET("/topics", context.Wrap(th.ListTopics))                            // 话题列表
	v1.GET("/topic/:id", th.Auth.Optional(), context.Wrap(th.GetTopic))       // 话题详情，可匿名
	v1.POST("/topics", authorize, context.Wrap(th.CreateTopic))               // 发布话题
	v1.POST("/topics/update", authorize, context.Wrap(th.UpdateTopic))        // 编辑话题
}

func (th *TopicHandler) ListTopics(c *gin.Context) error {
	var req types.ListTopicsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	topics, err := th.TopicService.ListTopics(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, topics)
	return nil
}

func (th *TopicHandler) GetTopic(c *gin.Context) error {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的话题ID")
	}
	mdrender := c.DefaultQuery("mdrender", "true") != "false"
	viewerID := context.OptionalUserID(c)

	detail, err := th.TopicService.GetTopicDetail(c.Request.Context(), topicID, viewerID, mdrender)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (th *TopicHandler) CreateTopic(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	topicID, err := th.TopicService.CreateTopic(c.Request.Context(), &req, userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.CreateTopicResponse{
		Success: true,
		TopicID: topicID,
	})
	return nil
}

func (th *TopicHandler) UpdateTopic(c *gin.Context) error {
	var req types.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	topicID, err := th.TopicService.UpdateTopic(c.Request.Context(), &req, userID, context.IsAdmin(c))
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.UpdateTopicResponse{
		Success: true,
		TopicID: topicID,
	})
	return nil
}
