package blog

import "time"

type BlogPost struct {
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"author_id" db:"author_id"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	Title          string    `json:"title" db:"title"`
	Post           string    `json:"post" db:"post"`
	Slug           string    `json:"slug" db:"slug"`
	Created        time.Time `json:"created" db:"created"`
	Edited         time.Time `json:"edited" db:"edited"`

	Categories []Category `json:"categories"`
}

// Category is a post category attached N-N to blog posts. Write access is
// admin only.
type Category struct {
	ID       int64  `json:"id" db:"id"`
	Category string `json:"category" db:"category"`
}
