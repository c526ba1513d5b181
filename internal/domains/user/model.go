package user

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	DateJoined   time.Time `json:"date_joined" db:"date_joined"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// Statistics aggregates a user's activity for the profile endpoint.
type Statistics struct {
	BlogPostsCount int `json:"blog_posts_count"`
	CommentsCount  int `json:"comments_count"`
	PhotosCount    int `json:"photos_count"`
}
