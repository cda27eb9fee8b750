package dao

import (
	"Club/models"
	"testing"

	"github.com/glebarez/sqlite"
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
