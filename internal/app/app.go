package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "vlog-hub/internal/controller/http"
	"vlog-hub/internal/repo/persistent"
	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/cache"
	"vlog-hub/pkg/config"
	"vlog-hub/pkg/database"
	"vlog-hub/pkg/jwt"
	"vlog-hub/pkg/logger"
	"vlog-hub/pkg/middleware"
	"vlog-hub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

// Deps are the infrastructure clients the router is built from. Redis and
// Storage are optional.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage usecase.ObjectStorage
}

type App struct {
	cfg *config.Config
	log *logger.Logger

	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client

	srv *http.Server
}

// New connects to every configured backend. Redis and S3 are only
// contacted when enabled.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, err
		}
	}

	a := &App{cfg: cfg, log: log, db: db}

	if cfg.RedisEnabled {
		a.redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			database.Close(db)
			return nil, err
		}
	} else {
		log.Warn("Redis disabled: logout revocation and rate limiting are off")
	}

	if cfg.UploadsEnabled() {
		a.s3Client, err = s3.NewClient(cfg)
		if err != nil {
			a.closeBackends()
			return nil, err
		}
	} else {
		log.Warn("S3_BUCKET_NAME not set: cover image uploads are disabled")
	}

	return a, nil
}

func (a *App) deps() Deps {
	deps := Deps{DB: a.db, Redis: a.redisClient}
	if a.s3Client != nil {
		deps.Storage = a.s3Client
	}
	return deps
}

// NewRouter wires repositories, use cases and handlers onto a gin engine.
func NewRouter(cfg *config.Config, log *logger.Logger, deps Deps) *gin.Engine {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(deps.DB)
	vlogRepo := persistent.NewVlogRepository(deps.DB)
	feedbackRepo := persistent.NewFeedbackRepository(deps.DB)
	therapistRepo := persistent.NewTherapistRepository(deps.DB)

	// Initialize use cases
	var revoker usecase.TokenRevoker
	if deps.Redis != nil {
		revoker = cache.NewTokenRevocationList(deps.Redis)
	}
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, revoker, log)
	vlogUseCase := usecase.NewVlogUseCase(vlogRepo, deps.Storage, log)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackRepo, log)
	therapistUseCase := usecase.NewTherapistUseCase(therapistRepo, log)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var extra []gin.HandlerFunc
	if deps.Redis != nil && cfg.RateLimitPerMinute > 0 {
		extra = append(extra, middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitPerMinute, time.Minute))
	}

	apiHTTP.RegisterRoutes(r.Group(cfg.APIPrefix), apiHTTP.Handlers{
		Auth:      apiHTTP.NewAuthHandler(authUseCase),
		Vlog:      apiHTTP.NewVlogHandler(vlogUseCase),
		Feedback:  apiHTTP.NewFeedbackHandler(feedbackUseCase),
		Therapist: apiHTTP.NewTherapistHandler(therapistUseCase),
	}, middleware.AuthMiddleware(authUseCase), middleware.OptionalAuth(authUseCase), extra...)

	return r
}

// Run starts the HTTP server in the background.
func (a *App) Run() {
	a.srv = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: NewRouter(a.cfg, a.log, a.deps()),
	}

	go func() {
		a.log.Info("Vlog hub starting on port %s", a.cfg.ServerPort)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()
}

// Wait blocks until SIGINT or SIGTERM.
func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down vlog hub...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if a.srv != nil {
		if err = a.srv.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
		}
	}
	a.closeBackends()

	a.log.Info("Vlog hub exited")
	return err
}

func (a *App) closeBackends() {
	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}
}
