package comment

import "time"

// PostComment is a reader comment attached to a blog post. The author is
// recorded as a display string, not a foreign key, so comments survive
// account deletion.
type PostComment struct {
	ID      int64     `json:"id"`
	PostID  int64     `json:"post_id"`
	Author  string    `json:"author"`
	Comment string    `json:"comment"`
	Created time.Time `json:"created"`
	Edited  time.Time `json:"edited"`
}
