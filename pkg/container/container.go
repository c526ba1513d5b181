package container

import (
	"context"
	"fmt"
	"time"

	"brashfox-backend/internal/config"
	aboutHandler "brashfox-backend/internal/domains/about/handler"
	aboutRepo "brashfox-backend/internal/domains/about/repository"
	aboutService "brashfox-backend/internal/domains/about/service"
	blogHandler "brashfox-backend/internal/domains/blog/handler"
	blogRepo "brashfox-backend/internal/domains/blog/repository"
	blogService "brashfox-backend/internal/domains/blog/service"
	commentHandler "brashfox-backend/internal/domains/comment/handler"
	commentRepo "brashfox-backend/internal/domains/comment/repository"
	commentService "brashfox-backend/internal/domains/comment/service"
	messageHandler "brashfox-backend/internal/domains/message/handler"
	messageRepo "brashfox-backend/internal/domains/message/repository"
	messageService "brashfox-backend/internal/domains/message/service"
	photoHandler "brashfox-backend/internal/domains/photo/handler"
	photoRepo "brashfox-backend/internal/domains/photo/repository"
	photoService "brashfox-backend/internal/domains/photo/service"
	photocategoryHandler "brashfox-backend/internal/domains/photocategory/handler"
	photocategoryRepo "brashfox-backend/internal/domains/photocategory/repository"
	photocategoryService "brashfox-backend/internal/domains/photocategory/service"
	phototagHandler "brashfox-backend/internal/domains/phototag/handler"
	phototagRepo "brashfox-backend/internal/domains/phototag/repository"
	phototagService "brashfox-backend/internal/domains/phototag/service"
	userHandler "brashfox-backend/internal/domains/user/handler"
	userRepo "brashfox-backend/internal/domains/user/repository"
	userService "brashfox-backend/internal/domains/user/service"
	"brashfox-backend/internal/infrastructure/cache"
	"brashfox-backend/internal/infrastructure/database"
	"brashfox-backend/internal/infrastructure/email"
	"brashfox-backend/internal/infrastructure/storage"
	"brashfox-backend/pkg/jwt"
	"brashfox-backend/pkg/logger"
)

// Container wires every dependency of the API once at startup. A wiring
// error means the process does not start.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *cache.RedisClient

	JWTManager *jwt.Manager

	UserHandler          *userHandler.UserHandler
	TokenHandler         *userHandler.TokenHandler
	BlogHandler          *blogHandler.BlogHandler
	CategoryHandler      *blogHandler.CategoryHandler
	CommentHandler       *commentHandler.CommentHandler
	PhotoHandler         *photoHandler.PhotoHandler
	PhotoCategoryHandler *photocategoryHandler.CategoryHandler
	PhotoTagHandler      *phototagHandler.TagHandler
	MessageHandler       *messageHandler.MessageHandler
	AboutHandler         *aboutHandler.AboutHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisClient := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	objectStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	notificationSink := email.NewSMTPSink(cfg.Email)
	imageProcessor := storage.NewImageProcessor()

	pool := db.Pool

	users := userRepo.NewPostgresRepository(pool)
	userSvc := userService.NewUserService(users)

	posts := blogRepo.NewPostgresRepository(pool)
	blogSvc := blogService.NewBlogService(posts)
	categories := blogRepo.NewCategoryRepository(pool)
	categorySvc := blogService.NewCategoryService(categories)

	comments := commentRepo.NewPostgresRepository(pool)
	commentSvc := commentService.NewCommentService(comments)

	photos := photoRepo.NewPostgresRepository(pool)
	photoSvc := photoService.NewPhotoService(photos, objectStorage, imageProcessor)

	photoCategories := photocategoryRepo.NewPostgresRepository(pool)
	photoCategorySvc := photocategoryService.NewCategoryService(photoCategories, objectStorage)

	photoTags := phototagRepo.NewPostgresRepository(pool)
	photoTagSvc := phototagService.NewTagService(photoTags)

	messages := messageRepo.NewPostgresRepository(pool)
	messageSvc := messageService.NewMessageService(messages, notificationSink)

	aboutMe := aboutRepo.NewPostgresRepository(pool)
	aboutSvc := aboutService.NewAboutService(aboutMe, objectStorage)

	return &Container{
		Config:     cfg,
		DB:         db,
		Redis:      redisClient,
		JWTManager: jwtManager,

		UserHandler:          userHandler.NewUserHandler(userSvc),
		TokenHandler:         userHandler.NewTokenHandler(userSvc, users, jwtManager),
		BlogHandler:          blogHandler.NewBlogHandler(blogSvc),
		CategoryHandler:      blogHandler.NewCategoryHandler(categorySvc),
		CommentHandler:       commentHandler.NewCommentHandler(commentSvc),
		PhotoHandler:         photoHandler.NewPhotoHandler(photoSvc),
		PhotoCategoryHandler: photocategoryHandler.NewCategoryHandler(photoCategorySvc),
		PhotoTagHandler:      phototagHandler.NewTagHandler(photoTagSvc),
		MessageHandler:       messageHandler.NewMessageHandler(messageSvc),
		AboutHandler:         aboutHandler.NewAboutHandler(aboutSvc),
	}, nil
}

// Cleanup releases the pooled connections on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
}
