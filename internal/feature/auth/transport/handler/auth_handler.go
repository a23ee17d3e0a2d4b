// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/usecase"
	"todo_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録し、トークンを発行します。
	Register(ctx context.Context, email, password string) (*usecase.Result, error)
	// Login はユーザーを認証し、成功時にトークンと認証されたユーザーを返します。
	Login(ctx context.Context, email, password string) (*usecase.Result, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時（事前チェック・挿入競合とも）は409を返却
// - その他のストア障害は詳細を隠して500を返却
// - 成功時はトークンと公開ユーザービュー付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			api.Error(c, http.StatusConflict, "User with this email already exists")
			return
		}
		// 内部詳細を漏らさないよう汎用メッセージを返す
		slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	slog.Info("user registered", "email", req.Email, "user_id", result.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		AccessToken: result.Token,
		User:        dto.UserResFromEntity(result.User),
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（存在しないメールとパスワード不一致は同一メッセージ）
// - 認証成功時はトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrAccountInactive) {
			api.Error(c, http.StatusUnauthorized, "Account is inactive")
			return
		}
		api.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		AccessToken: result.Token,
		User:        dto.UserResFromEntity(result.User),
	})
}

// Profile は認証済みユーザー自身のプロフィールを返します。
// AuthRequiredミドルウェアが解決したユーザーをコンテキストから読み取ります。
// パスワードフィールドはレスポンスに含まれません。
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		// ミドルウェアを経由していない場合は常に拒否する
		api.Error(c, http.StatusUnauthorized, "invalid token")
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResFromEntity(user))
}
