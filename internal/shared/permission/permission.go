package permission

import (
	"errors"
	"net/http"
)

// Request-level authorization predicates. Each predicate short-circuits to
// allow for safe (read) methods before any object-level check runs. Anonymous
// writes fail with ErrUnauthenticated (401), authenticated non-owners with
// ErrForbidden (403).

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)

// Identity is the authenticated principal extracted from the access token.
// A nil *Identity means the request is anonymous.
type Identity struct {
	UserID   int64
	Username string
	IsStaff  bool
}

// Owner identifies who owns an object, by user id, username, or both. The
// zero value means "no owner recorded".
type Owner struct {
	UserID   int64
	Username string
}

func (o Owner) isSet() bool {
	return o.UserID != 0 || o.Username != ""
}

func (o Owner) matches(id *Identity) bool {
	if id == nil {
		return false
	}
	if o.UserID != 0 && o.UserID == id.UserID {
		return true
	}
	return o.Username != "" && o.Username == id.Username
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func writeCheck(method string, id *Identity) (done bool, err error) {
	if isSafeMethod(method) {
		return true, nil
	}
	if id == nil {
		return true, ErrUnauthenticated
	}
	if id.IsStaff {
		return true, nil
	}
	return false, nil
}

// AuthorOrReadOnly allows reads for anyone and writes for staff or the
// object's author.
func AuthorOrReadOnly(method string, id *Identity, author Owner) error {
	if done, err := writeCheck(method, id); done {
		return err
	}
	if author.matches(id) {
		return nil
	}
	return ErrForbidden
}

// OwnerOrReadOnly is AuthorOrReadOnly keyed on an object's user field.
func OwnerOrReadOnly(method string, id *Identity, owner Owner) error {
	if done, err := writeCheck(method, id); done {
		return err
	}
	if owner.matches(id) {
		return nil
	}
	return ErrForbidden
}

// OwnerOrAdmin falls back from the author field to the user field, whichever
// is present.
func OwnerOrAdmin(method string, id *Identity, author, user Owner) error {
	if done, err := writeCheck(method, id); done {
		return err
	}
	owner := author
	if !owner.isSet() {
		owner = user
	}
	if owner.matches(id) {
		return nil
	}
	return ErrForbidden
}

// AdminOrReadOnly restricts writes to staff; reads are unrestricted.
func AdminOrReadOnly(method string, id *Identity) error {
	if done, err := writeCheck(method, id); done {
		return err
	}
	return ErrForbidden
}
