package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID           int64            `json:"id"`
	Username     string           `json:"username"`
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	PhotoProfile *string          `json:"photo_profile,omitempty"`
	CoverPhoto   *string          `json:"cover_photo,omitempty"`
	Bio          *string          `json:"bio,omitempty"`
	CreatedAt    pgtype.Timestamp `json:"created_at"`
	UpdatedAt    pgtype.Timestamp `json:"updated_at"`
}

// AuthorInfo is the author display data denormalized into feed rows and
// reply listings.
type AuthorInfo struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

func (u *User) AuthorInfo() *AuthorInfo {
	return &AuthorInfo{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.FullName,
		ProfilePicture: u.PhotoProfile,
	}
}
