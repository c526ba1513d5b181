package validation

import "regexp"

// Text bounds are measured on the trimmed value; both ends are inclusive.
const (
	MinCommentLength = 10
	MaxCommentLength = 1000

	MinMessageLength = 10
	MaxMessageLength = 5000

	MinTitleLength = 5
	MaxTitleLength = 200

	MinPostLength = 50
	MaxPostLength = 50000

	MinUsernameLength = 3
	MaxUsernameLength = 150
)

// Upload limits. The image cap applies to gallery photos, the avatar cap to
// the about-me profile image.
const (
	MaxImageSize  = 10 * 1024 * 1024
	MaxAvatarSize = 2 * 1024 * 1024
	ThumbnailSize = 300
)

// AllowedImageFormats are matched against the lower-cased file extension.
var AllowedImageFormats = []string{"jpg", "jpeg", "png", "gif", "webp"}

var (
	SlugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	UsernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	TagPattern      = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// Pagination defaults for list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
