package dto

import (
	"time"

	"todo_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public view of a user. The password digest never appears in
// any response.
type UserRes struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileRes is the view returned by /api/auth/profile.
type ProfileRes struct {
	UserRes
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthRes is the response for a successful registration or login.
type AuthRes struct {
	AccessToken string  `json:"accessToken"`
	User        UserRes `json:"user"`
}

// UserResFromEntity converts a user entity to its public view.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ProfileResFromEntity converts a user entity to the profile view.
func ProfileResFromEntity(u *entity.User) ProfileRes {
	return ProfileRes{
		UserRes:   UserResFromEntity(u),
		UpdatedAt: u.UpdatedAt,
	}
}
