package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/ideavault/backend/internal/router"
	"github.com/ideavault/backend/pkg/config"
	"github.com/ideavault/backend/pkg/firebase"
	"github.com/ideavault/backend/pkg/logger"
	"github.com/ideavault/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Initialize database connections
	db, err := config.InitDB(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("initializing databases", zap.Error(err))
	}
	defer db.CloseDB()

	// Initialize Firebase. Google sign-in is optional: without credentials
	// the firebase-login endpoint answers 503 and local auth still works.
	ctx := context.Background()
	var firebaseApp *firebase.App
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err = firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			zapLog.Fatal("initializing Firebase", zap.Error(err))
		}
	} else {
		zapLog.Warn("Firebase credentials not configured, Google sign-in disabled")
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, db.Mongo.Database(cfg.MongoDatabase), authClient(firebaseApp), cfg.JWTSecret, zapLog); err != nil {
		zapLog.Fatal("setting up routes", zap.Error(err))
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func authClient(app *firebase.App) *auth.Client {
	if app == nil {
		return nil
	}
	return app.AuthClient
}
