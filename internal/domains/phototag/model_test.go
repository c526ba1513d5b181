package phototag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"simple", "street", false},
		{"hyphen and underscore", "street-photo_2", false},
		{"empty", "", true},
		{"too long", strings.Repeat("t", 65), true},
		{"contains space", "street photo", true},
		{"non-ascii", "ulica™", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Request{Tag: tt.tag}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
