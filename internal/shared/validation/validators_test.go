package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"jpg allowed", "photo.jpg", 1024, nil},
		{"jpeg allowed", "photo.JPEG", 1024, nil},
		{"png allowed", "photo.png", 1024, nil},
		{"gif allowed", "photo.gif", 1024, nil},
		{"webp allowed", "photo.webp", 1024, nil},
		{"exactly at cap", "photo.jpg", MaxImageSize, nil},
		{"one byte over cap", "photo.jpg", MaxImageSize + 1, ErrFileTooLarge},
		{"bmp rejected", "photo.bmp", 1024, ErrInvalidFile},
		{"no extension rejected", "photo", 1024, ErrInvalidFile},
		{"svg rejected", "logo.svg", 1024, ErrInvalidFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageFile(tt.filename, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAvatarFile(t *testing.T) {
	assert.NoError(t, ValidateAvatarFile("me.png", MaxAvatarSize))
	assert.ErrorIs(t, ValidateAvatarFile("me.png", MaxAvatarSize+1), ErrFileTooLarge)
	assert.ErrorIs(t, ValidateAvatarFile("me.tiff", 100), ErrInvalidFile)
}

func TestValidateCommentLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"exactly min", strings.Repeat("a", 10), nil},
		{"exactly max", strings.Repeat("a", 1000), nil},
		{"below min", strings.Repeat("a", 9), ErrOutOfBounds},
		{"above max", strings.Repeat("a", 1001), ErrOutOfBounds},
		{"whitespace does not count", "   " + strings.Repeat("a", 9) + "   ", ErrOutOfBounds},
		{"multibyte runes count once", strings.Repeat("é", 10), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommentLength(tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMessageLength(t *testing.T) {
	assert.NoError(t, ValidateMessageLength(strings.Repeat("m", 10)))
	assert.NoError(t, ValidateMessageLength(strings.Repeat("m", 5000)))
	assert.ErrorIs(t, ValidateMessageLength("too short"), ErrOutOfBounds)
	assert.ErrorIs(t, ValidateMessageLength(strings.Repeat("m", 5001)), ErrOutOfBounds)
}

func TestValidatePostTitle(t *testing.T) {
	assert.NoError(t, ValidatePostTitle("Hello"))
	assert.NoError(t, ValidatePostTitle(strings.Repeat("t", 200)))
	assert.ErrorIs(t, ValidatePostTitle("Hey"), ErrOutOfBounds)
	assert.ErrorIs(t, ValidatePostTitle(strings.Repeat("t", 201)), ErrOutOfBounds)
}

func TestValidatePostBody(t *testing.T) {
	assert.NoError(t, ValidatePostBody(strings.Repeat("b", 50)))
	assert.ErrorIs(t, ValidatePostBody(strings.Repeat("b", 49)), ErrOutOfBounds)
	assert.ErrorIs(t, ValidatePostBody(strings.Repeat("b", 50001)), ErrOutOfBounds)
}

func TestPatternCharacterClasses(t *testing.T) {
	assert.True(t, SlugPattern.MatchString("my-post_1"))
	assert.False(t, SlugPattern.MatchString("my post"))
	assert.False(t, SlugPattern.MatchString("café"))

	assert.True(t, UsernamePattern.MatchString("jan.kowalski@example"))
	assert.False(t, UsernamePattern.MatchString("bad name"))

	assert.True(t, TagPattern.MatchString("street-photo_2"))
	assert.False(t, TagPattern.MatchString("street photo"))
}
