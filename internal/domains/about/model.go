package about

import "time"

// AboutMe is the site owner's profile. At most one row exists; the table
// carries a constant-key unique index so a second insert fails at the store.
type AboutMe struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Name            string            `json:"name"`
	Bio             string            `json:"bio"`
	ProfileImageKey string            `json:"-"`
	ProfileImageURL string            `json:"profile_image_url,omitempty"`
	Specializations []string          `json:"specializations"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	SocialLinks     map[string]string `json:"social_links"`
	Created         time.Time         `json:"created"`
	Updated         time.Time         `json:"updated"`
}
