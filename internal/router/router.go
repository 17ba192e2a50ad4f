package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/ideavault/backend/internal/extid"
	"github.com/ideavault/backend/internal/handlers"
	"github.com/ideavault/backend/internal/middleware"
	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes runs migrations, builds the repository and handler graph and
// registers every route.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgdb *mongo.Database, firebaseAuthClient *auth.Client, jwtSecret string, log *zap.Logger) error {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
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
	)
	if err != nil {
		return err
	}
	log.Info("PostgreSQL auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	topicRepo := repositories.NewPostgresTopicRepository(pgdb)
	ideaRepo := repositories.NewPostgresIdeaRepository(pgdb)
	memoRepo := repositories.NewPostgresMemoRepository(pgdb)
	threadRepo := repositories.NewPostgresThreadRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	reportRepo := repositories.NewPostgresReportRepository(pgdb)
	announceRepo := repositories.NewMongoAnnounceRepository(mgdb)

	// Polymorphic target resolution: one entity store, one codec, shared by
	// every handler that accepts external target ids.
	entityStore := repositories.NewEntityStore(pgdb)
	codec := extid.Codec{}
	resolver := target.NewResolver(entityStore, codec)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, firebaseAuthClient, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	userHandler := handlers.NewUserHandler(userRepo, profileRepo)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, notificationRepo)
	followHandler.RegisterFollowRoutes(api)

	topicHandler := handlers.NewTopicHandler(topicRepo)
	topicHandler.RegisterTopicRoutes(api)

	ideaHandler := handlers.NewIdeaHandler(ideaRepo, topicRepo)
	ideaHandler.RegisterIdeaRoutes(api)

	memoHandler := handlers.NewMemoHandler(memoRepo)
	memoHandler.RegisterMemoRoutes(api)

	feedHandler := handlers.NewFeedHandler(ideaRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)

	threadHandler := handlers.NewThreadHandler(threadRepo, resolver, codec, log)
	threadHandler.RegisterThreadRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, threadRepo, notificationRepo, entityStore)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, notificationRepo, resolver, codec, log)
	likeHandler.RegisterLikeRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo, codec)
	notificationHandler.RegisterNotificationRoutes(api)

	announceHandler := handlers.NewAnnounceHandler(announceRepo, userRepo, notificationRepo)
	announceHandler.RegisterAnnounceRoutes(api)

	reportHandler := handlers.NewReportHandler(reportRepo, userRepo)
	reportHandler.RegisterReportRoutes(api)

	log.Info("routes configured")
	return nil
}
