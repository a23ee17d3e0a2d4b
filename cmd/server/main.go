package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	taskusecase "todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/config"
	infradb "todo_backend/internal/platform/db"
	"todo_backend/internal/platform/jwt"
	"todo_backend/internal/platform/password"
	infraredis "todo_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定（JWT_SECRET未設定はここで失敗する）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 未知のJSONフィールドを含むリクエストを拒否する
	gin.EnableJsonDecoderDisallowUnknownFields()

	// db
	db := infradb.Open(cfg.DSN(), cfg.RunMigrations)

	// Redis（任意。接続できない場合はキャッシュなしで動作する）
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Platform
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	tokens := jwt.NewService(cfg.JWTSecret, cfg.JWTExpiration)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	taskRepo := di.NewTaskRepository(rdb, db, cfg.TaskCacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens, tokens)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成（CORS込み）
	r := router.NewRouter(authH, taskH, authUC, cfg.GetCORSAllowedOrigins())

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
