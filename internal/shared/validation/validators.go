package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors the resource layer maps to HTTP statuses. Wrapped values
// carry the human-readable detail.
var (
	ErrFileTooLarge  = errors.New("file too large")
	ErrInvalidFile   = errors.New("invalid file")
	ErrOutOfBounds   = errors.New("value out of bounds")
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidateImageFile checks the gallery upload limits: allow-listed extension
// and size up to MaxImageSize inclusive.
func ValidateImageFile(filename string, size int64) error {
	return validateFile(filename, size, MaxImageSize)
}

// ValidateAvatarFile applies the stricter profile-image size cap.
func ValidateAvatarFile(filename string, size int64) error {
	return validateFile(filename, size, MaxAvatarSize)
}

func validateFile(filename string, size, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("%w: size exceeds maximum of %dMB", ErrFileTooLarge, maxSize/(1024*1024))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range AllowedImageFormats {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: format %q not allowed (allowed: %s)",
		ErrInvalidFile, ext, strings.Join(AllowedImageFormats, ", "))
}

// ValidateCommentLength bounds the trimmed comment body.
func ValidateCommentLength(value string) error {
	return validateLength("comment", value, MinCommentLength, MaxCommentLength)
}

// ValidateMessageLength bounds the trimmed contact message body.
func ValidateMessageLength(value string) error {
	return validateLength("message", value, MinMessageLength, MaxMessageLength)
}

// ValidatePostTitle bounds the trimmed blog post title.
func ValidatePostTitle(value string) error {
	return validateLength("title", value, MinTitleLength, MaxTitleLength)
}

// ValidatePostBody bounds the trimmed blog post body.
func ValidatePostBody(value string) error {
	return validateLength("post", value, MinPostLength, MaxPostLength)
}

func validateLength(field, value string, min, max int) error {
	cleaned := strings.TrimSpace(value)
	n := len([]rune(cleaned))
	if n < min {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrOutOfBounds, field, min)
	}
	if n > max {
		return fmt.Errorf("%w: %s cannot exceed %d characters", ErrOutOfBounds, field, max)
	}
	return nil
}
