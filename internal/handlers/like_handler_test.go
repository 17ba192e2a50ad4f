package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ideavault/backend/internal/extid"
	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/ideavault/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
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
		&models.Topic{},
		&models.Idea{},
		&models.Memo{},
		&models.Thread{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	))
	return db
}

func invokeJSON(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, method, path, body string, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
	require.NoError(t, handler(c))
	return rec
}

func TestLikeNotificationsFireOncePerActivation(t *testing.T) {
	db := setupHandlerDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()

	author := &models.User{Username: "author", Email: "author@example.com"}
	require.NoError(t, db.Create(author).Error)
	liker := &models.User{Username: "liker", Email: "liker@example.com"}
	require.NoError(t, db.Create(liker).Error)
	idea := &models.Idea{CreatorID: author.ID, Title: "an idea", Content: "content", IsPublished: true}
	require.NoError(t, db.Create(idea).Error)

	codec := extid.Codec{}
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notifRepo := repositories.NewPostgresNotificationRepository(db)
	resolver := target.NewResolver(repositories.NewEntityStore(db), codec)
	h := NewLikeHandler(likeRepo, notifRepo, resolver, codec, zap.NewNop())

	likeBody := fmt.Sprintf(`{"like_target_type":"Idea","liked_idea_id":%q}`,
		codec.EncodeUint(target.KindIdea, idea.ID))
	unlikeBody := fmt.Sprintf(`{"like_target_type":"Idea","liked_idea_id":%q,"is_liked":false}`,
		codec.EncodeUint(target.KindIdea, idea.ID))
	relikeBody := fmt.Sprintf(`{"like_target_type":"Idea","liked_idea_id":%q,"is_liked":true}`,
		codec.EncodeUint(target.KindIdea, idea.ID))

	notifCount := func() int64 {
		var count int64
		require.NoError(t, db.Model(&models.Notification{}).
			Where("recipient_id = ?", author.ID).Count(&count).Error)
		return count
	}

	rec := invokeJSON(t, e, h.CreateLike, http.MethodPost, "/likes", likeBody, liker.ID)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), notifCount())

	// Re-liking an already active like stays silent.
	invokeJSON(t, e, h.CreateLike, http.MethodPost, "/likes", likeBody, liker.ID)
	assert.Equal(t, int64(1), notifCount())
	invokeJSON(t, e, h.ToggleLike, http.MethodPut, "/likes", relikeBody, liker.ID)
	assert.Equal(t, int64(1), notifCount())

	// A fresh activation after an unlike notifies again.
	invokeJSON(t, e, h.ToggleLike, http.MethodPut, "/likes", unlikeBody, liker.ID)
	assert.Equal(t, int64(1), notifCount())
	invokeJSON(t, e, h.ToggleLike, http.MethodPut, "/likes", relikeBody, liker.ID)
	assert.Equal(t, int64(2), notifCount())
}

func TestSelfLikeNotifiesNobody(t *testing.T) {
	db := setupHandlerDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()

	author := &models.User{Username: "author", Email: "author@example.com"}
	require.NoError(t, db.Create(author).Error)
	idea := &models.Idea{CreatorID: author.ID, Title: "an idea", Content: "content", IsPublished: true}
	require.NoError(t, db.Create(idea).Error)

	codec := extid.Codec{}
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notifRepo := repositories.NewPostgresNotificationRepository(db)
	resolver := target.NewResolver(repositories.NewEntityStore(db), codec)
	h := NewLikeHandler(likeRepo, notifRepo, resolver, codec, zap.NewNop())

	body := fmt.Sprintf(`{"like_target_type":"Idea","liked_idea_id":%q}`,
		codec.EncodeUint(target.KindIdea, idea.ID))
	rec := invokeJSON(t, e, h.CreateLike, http.MethodPost, "/likes", body, author.ID)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
