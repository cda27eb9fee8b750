package handler

import (
	"Club/config"
	"Club/dao"
	"Club/dao/cache"
	"Club/middleware"
	"Club/models"
	"Club/pkg/markdown"
	"Club/pkg/snowflake"
	"Club/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Users{},
		&models.Topic{},
		&models.Reply{},
		&models.ReplyUp{},
		&models.TopicCollect{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		App: &config.App{Env: "test", Tabs: []string{"share", "ask", "job", "dev"}},
		Jwt: &config.Jwt{Secret: "test-secret"},
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userDAO := dao.NewUsers(db)
	auth := middleware.NewAuth(cfg, userDAO, rdb)
	topicService := &service.TopicService{
		Config:   cfg,
		TopicDAO: dao.NewTopic(db),
		ReplyDAO: dao.NewReply(db),
		UserDAO:  userDAO,
		Ups:      cache.NewReplyUpStorage(rdb, dao.NewReplyUp(db)),
		Collects: cache.NewCollectStorage(rdb, dao.NewTopicCollect(db)),
		AtService: &service.AtService{
			UserDAO:    userDAO,
			MessageDAO: dao.NewMessage(db),
		},
		Renderer: markdown.New(),
	}

	th := &TopicHandler{Config: cfg, Auth: auth, TopicService: topicService}
	r := gin.New()
	th.RegisterRouter(r.Group("/api"))
	return &testEnv{router: r, db: db}
}

func (e *testEnv) seedUser(t *testing.T, loginname string) *models.Users {
	t.Helper()

	user := &models.Users{
		ID:        snowflake.GenID(),
		Loginname: loginname,
		CreateAt:  time.Now(),
		UpdateAt:  time.Now(),
	}
	if err := dao.NewUsers(e.db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (e *testEnv) postJSON(t *testing.T, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path+"?accesstoken="+token, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func TestListTopicsResponseShape(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	create := env.postJSON(t, "/api/v1/topics", user.AccessToken, gin.H{
		"title":   "Hello World Topic",
		"tab":     "share",
		"content": "no mentions here",
	})
	if create.Code != http.StatusOK {
		t.Fatalf("create failed: %d %s", create.Code, create.Body.String())
	}

	var created struct {
		Success bool   `json:"success"`
		TopicID string `json:"topic_id"`
	}
	if err := json.Unmarshal(create.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !created.Success || created.TopicID == "" {
		t.Fatalf("bad create response: %s", create.Body.String())
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/topics?mdrender=false", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}
	var listed struct {
		Success bool `json:"success"`
		Data    []struct {
			Title  string `json:"title"`
			Tab    string `json:"tab"`
			Author struct {
				Loginname string `json:"loginname"`
			} `json:"author"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if !listed.Success || len(listed.Data) != 1 {
		t.Fatalf("bad list response: %s", w.Body.String())
	}
	if listed.Data[0].Title != "Hello World Topic" || listed.Data[0].Author.Loginname != "alice" {
		t.Fatalf("bad listing item: %s", w.Body.String())
	}
}

func TestGetTopicNotFoundShape(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/topic/12345", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp struct {
		Success  bool   `json:"success"`
		ErrorMsg string `json:"error_msg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Success || resp.ErrorMsg == "" {
		t.Fatalf("bad error shape: %s", w.Body.String())
	}
}

func TestCreateTopicRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON(t, "/api/v1/topics", "bogus", gin.H{
		"title":   "Hello World Topic",
		"tab":     "share",
		"content": "body",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUpdateTopicForbiddenStatus(t *testing.T) {
	env := newTestEnv(t)
	author := env.seedUser(t, "author")
	intruder := env.seedUser(t, "intruder")

	create := env.postJSON(t, "/api/v1/topics", author.AccessToken, gin.H{
		"title":   "the original title",
		"tab":     "share",
		"content": "body",
	})
	var created struct {
		TopicID string `json:"topic_id"`
	}
	if err := json.Unmarshal(create.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	w := env.postJSON(t, "/api/v1/topics/update", intruder.AccessToken, gin.H{
		"topic_id": created.TopicID,
		"title":    "a hijacked title!",
		"tab":      "share",
		"content":  "body",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}
