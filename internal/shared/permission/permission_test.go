package permission

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorOrReadOnly(t *testing.T) {
	owner := &Identity{UserID: 1, Username: "alice"}
	other := &Identity{UserID: 2, Username: "bob"}
	staff := &Identity{UserID: 3, Username: "root", IsStaff: true}
	byID := Owner{UserID: 1}
	byName := Owner{Username: "alice"}

	tests := []struct {
		name    string
		method  string
		id      *Identity
		author  Owner
		wantErr error
	}{
		{"anonymous read allowed", http.MethodGet, nil, byID, nil},
		{"anonymous head allowed", http.MethodHead, nil, byID, nil},
		{"anonymous write unauthenticated", http.MethodPost, nil, byID, ErrUnauthenticated},
		{"owner write by id allowed", http.MethodPut, owner, byID, nil},
		{"owner write by username allowed", http.MethodDelete, owner, byName, nil},
		{"non-owner write forbidden", http.MethodPatch, other, byID, ErrForbidden},
		{"staff write allowed", http.MethodDelete, staff, byID, nil},
		{"no owner recorded forbidden", http.MethodPut, other, Owner{}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorOrReadOnly(tt.method, tt.id, tt.author)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOwnerOrAdminFallsBackToUserField(t *testing.T) {
	caller := &Identity{UserID: 7, Username: "carol"}

	// Author empty, user field matches.
	assert.NoError(t, OwnerOrAdmin(http.MethodPut, caller, Owner{}, Owner{UserID: 7}))

	// Author present and different: the user field is not consulted.
	err := OwnerOrAdmin(http.MethodPut, caller, Owner{UserID: 9}, Owner{UserID: 7})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminOrReadOnly(t *testing.T) {
	user := &Identity{UserID: 1, Username: "alice"}
	staff := &Identity{UserID: 2, Username: "root", IsStaff: true}

	assert.NoError(t, AdminOrReadOnly(http.MethodGet, nil))
	assert.ErrorIs(t, AdminOrReadOnly(http.MethodPost, nil), ErrUnauthenticated)
	assert.ErrorIs(t, AdminOrReadOnly(http.MethodPost, user), ErrForbidden)
	assert.NoError(t, AdminOrReadOnly(http.MethodPost, staff))
}
