package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler,
	validator jwtmw.IdentityValidator, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// CORSはルート登録より先に適用する
	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		r.Use(cors.New(corsCfg))
	} else {
		r.Use(cors.Default())
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// 新規ユーザー登録とログイン（トークンを発行する側なので認証不要）
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに有効なBearerトークンが必要になる
	protected := api.Group("/")
	protected.Use(jwtmw.AuthRequired(validator))
	{
		protected.GET("/auth/profile", auth.Profile)

		protected.POST("/tasks", tasks.Create)
		protected.GET("/tasks", tasks.List)
		protected.GET("/tasks/:id", tasks.Get)
		protected.PATCH("/tasks/:id", tasks.Update)
		protected.DELETE("/tasks/:id", tasks.Delete)
	}

	return r
}
