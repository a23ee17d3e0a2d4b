// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/jwt"
)

// dummyDigest はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// bcrypt比較が常に実行されることを保証します。
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードの一方向ハッシュを生成します。
	Hash(plaintext string) (string, error)
	// Verify は平文パスワードがハッシュと一致するかを検証します。
	Verify(plaintext, digest string) bool
}

// TokenIssuer はJWTトークン生成のインターフェースを定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TokenVerifier はJWTトークン検証のインターフェースを定義します。
type TokenVerifier interface {
	// VerifyToken は署名と有効期限を検証し、クレームを返します。
	VerifyToken(token string) (*jwt.Claims, error)
}

// Result は認証成功時の結果（トークンと認証されたユーザー）を表します。
type Result struct {
	Token string
	User  *entity.User
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	verifier TokenVerifier
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, issuer TokenIssuer, verifier TokenVerifier) *authUsecase {
	return &authUsecase{
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、トークンを発行します。
//
// メールアドレスの事前チェックは不要なハッシュ計算を避けるための最適化にすぎません。
// 同時登録の競合はストレージのユニーク制約が最終的な判定者であり、
// その場合もCreateがErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, password string) (*Result, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := u.issuer.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Result{Token: token, User: user}, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*Result, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザー未検出でも常にパスワード検証を実行する
	digest := dummyDigest
	if err == nil {
		digest = user.Password
	}
	match := u.hasher.Verify(password, digest)

	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	// 凍結されたアカウントはログイン不可（既発行トークンは失効しない）
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := u.issuer.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Result{Token: token, User: user}, nil
}

// ValidateIdentity はBearerトークンを検証し、対応するユーザーを解決します。
// 署名・有効期限の検証に失敗した場合、またはsubjectがストレージ上の
// ユーザーに解決できない場合（発行後に削除された場合を含む）、ErrInvalidTokenを返します。
func (u *authUsecase) ValidateIdentity(ctx context.Context, token string) (*entity.User, error) {
	claims, err := u.verifier.VerifyToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}
