package photo

import (
	"time"

	"brashfox-backend/internal/domains/phototag"
)

// Photo is a gallery entry. The author is a display string, not a user FK,
// so photos outlive accounts. ImageKey and ThumbnailKey are object-storage
// keys; the URLs are filled in from storage when the entry is served.
type Photo struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Author       string         `json:"author"`
	Event        string         `json:"event"`
	CategoryID   int64          `json:"category_id"`
	CategoryName string         `json:"category_name"`
	ImageKey     string         `json:"-"`
	ThumbnailKey string         `json:"-"`
	ImageURL     string         `json:"image_url"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Tags         []phototag.Tag `json:"tags"`
	Created      time.Time      `json:"created"`
	Edited       time.Time      `json:"edited"`
}
