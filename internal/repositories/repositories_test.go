package repositories

import (
	"fmt"
	"testing"

	"github.com/ideavault/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema. A
// single connection keeps the in-memory store alive for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Topic{},
		&models.Idea{},
		&models.Memo{},
		&models.Thread{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
		&models.Report{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestIdea(t *testing.T, db *gorm.DB, creatorID uint, title string) *models.Idea {
	t.Helper()
	idea := &models.Idea{
		CreatorID:   creatorID,
		Title:       title,
		Content:     "content of " + title,
		IsPublished: true,
	}
	require.NoError(t, db.Create(idea).Error)
	return idea
}

func createTestMemo(t *testing.T, db *gorm.DB, creatorID uint, title string) *models.Memo {
	t.Helper()
	memo := &models.Memo{CreatorID: creatorID, Title: title}
	require.NoError(t, db.Create(memo).Error)
	return memo
}
