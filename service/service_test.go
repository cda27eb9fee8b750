package service

import (
	"Club/config"
	"Club/dao"
	"Club/dao/cache"
	"Club/models"
	"Club/pkg/markdown"
	"Club/pkg/snowflake"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: &config.App{
			Env:  "test",
			Tabs: []string{"share", "ask", "job", "dev"},
		},
	}
}

func newTopicService(t *testing.T, db *gorm.DB) *TopicService {
	t.Helper()
	return newTopicServiceWithRedis(t, db, nil)
}

func newTopicServiceWithRedis(t *testing.T, db *gorm.DB, rdb *redis.Client) *TopicService {
	t.Helper()

	userDAO := dao.NewUsers(db)
	return &TopicService{
		Config:   testConfig(),
		TopicDAO: dao.NewTopic(db),
		ReplyDAO: dao.NewReply(db),
		UserDAO:  userDAO,
		Ups:      cache.NewReplyUpStorage(rdb, dao.NewReplyUp(db)),
		Collects: cache.NewCollectStorage(rdb, dao.NewTopicCollect(db)),
		AtService: &AtService{
			UserDAO:    userDAO,
			MessageDAO: dao.NewMessage(db),
		},
		Renderer: markdown.New(),
	}
}

func seedUser(t *testing.T, db *gorm.DB, loginname string, admin bool) *models.Users {
	t.Helper()

	user := &models.Users{
		ID:        snowflake.GenID(),
		Loginname: loginname,
		AvatarURL: "https://example.com/" + loginname + ".png",
		IsAdmin:   admin,
		CreateAt:  time.Now(),
		UpdateAt:  time.Now(),
	}
	if err := dao.NewUsers(db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", loginname, err)
	}
	return user
}

func seedReply(t *testing.T, db *gorm.DB, topicID, authorID, parentID uint64, content string) *models.Reply {
	t.Helper()

	reply := &models.Reply{
		ID:       snowflake.GenID(),
		TopicID:  topicID,
		AuthorID: authorID,
		Content:  content,
		ReplyID:  parentID,
		CreateAt: time.Now(),
	}
	if err := db.Create(reply).Error; err != nil {
		t.Fatalf("seed reply: %v", err)
	}
	return reply
}

func seedReplyUp(t *testing.T, db *gorm.DB, replyID, userID uint64) {
	t.Helper()

	up := &models.ReplyUp{
		ReplyID:  replyID,
		UserID:   userID,
		CreateAt: time.Now(),
	}
	if err := db.Create(up).Error; err != nil {
		t.Fatalf("seed reply up: %v", err)
	}
}

func loadTopic(t *testing.T, db *gorm.DB, topicID uint64) *models.Topic {
	t.Helper()

	var topic models.Topic
	if err := db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		t.Fatalf("load topic %d: %v", topicID, err)
	}
	return &topic
}

func loadUser(t *testing.T, db *gorm.DB, userID uint64) *models.Users {
	t.Helper()

	var user models.Users
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		t.Fatalf("load user %d: %v", userID, err)
	}
	return &user
}

func loadMessages(t *testing.T, db *gorm.DB) []*models.Message {
	t.Helper()

	var msgs []*models.Message
	if err := db.Find(&msgs).Error; err != nil {
		t.Fatalf("load messages: %v", err)
	}
	return msgs
}
