package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/config"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/handler"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/notify"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/router"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// Database. TranslateError lets the services catch duplicate-key
	// conflicts as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.Interest{},
		&model.VolunteerProfile{},
		&model.AudienceSegment{},
		&model.Program{},
		&model.ProgramRequirement{},
		&model.VolunteerApplication{},
		&model.VolunteerTask{},
		&model.VolunteerTaskItem{},
	); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Services
	authService := service.NewAuthService(db, rdb, cfg.JWT.Secret, cfg.JWT.AccessExpireHours, cfg.JWT.RefreshExpireHours)
	programService := service.NewProgramService(db)
	profileService := service.NewProfileService(db)
	applicationService := service.NewApplicationService(db, logger)
	taskService := service.NewTaskService(db)

	if cfg.Notify.Enabled {
		applicationService.SetNotifier(notify.NewRedisNotifier(rdb, cfg.Notify.Channel, logger))
	}

	// HTTP
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	router.Setup(r, router.Deps{
		DB:                      db,
		JWTSecret:               cfg.JWT.Secret,
		AuthHandler:             handler.NewAuthHandler(authService),
		ProgramHandler:          handler.NewProgramHandler(programService),
		ProgramAdminHandler:     handler.NewProgramAdminHandler(programService),
		ProfileHandler:          handler.NewProfileHandler(profileService),
		ApplicationHandler:      handler.NewApplicationHandler(applicationService),
		ApplicationAdminHandler: handler.NewApplicationAdminHandler(applicationService, taskService),
		TaskHandler:             handler.NewTaskHandler(taskService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
