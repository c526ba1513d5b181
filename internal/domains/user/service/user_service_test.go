package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"brashfox-backend/internal/domains/user"
)

type fakeUserRepository struct {
	users  map[int64]*user.User
	nextID int64
	stats  user.Statistics
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]*user.User), nextID: 1}
}

func (r *fakeUserRepository) Create(_ context.Context, u *user.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return 0, user.ErrUsernameAlreadyExists
		}
		if u.Email != "" && existing.Email == u.Email {
			return 0, user.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *u
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepository) List(_ context.Context, _, _ int) ([]user.User, int, error) {
	users := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, len(users), nil
}

func (r *fakeUserRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) GetStatistics(_ context.Context, _ *user.User) (*user.Statistics, error) {
	stats := r.stats
	return &stats, nil
}

func validRegisterRequest() user.RegisterRequest {
	return user.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	stored := repo.users[dto.ID]
	assert.NotEqual(t, "s3cret-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("s3cret-password")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Username = "bob"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestAuthenticateHidesUsernameExistence(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// Unknown user and wrong password fail identically.
	_, err = svc.Authenticate(context.Background(), user.LoginRequest{
		Username: "nobody", Password: "whatever-123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), user.LoginRequest{
		Username: "alice", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthenticateSucceedsWithCorrectPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), user.LoginRequest{
		Username: "alice", Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	oldHash := repo.users[dto.ID].PasswordHash

	newPassword := "changed-password"
	_, err = svc.Update(context.Background(), dto.ID, user.UpdateRequest{Password: &newPassword})
	require.NoError(t, err)

	newHash := repo.users[dto.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(newPassword)))
}

func TestGetProfileIncludesStatistics(t *testing.T) {
	repo := newFakeUserRepository()
	repo.stats = user.Statistics{BlogPostsCount: 3, CommentsCount: 7, PhotosCount: 2}
	svc := NewUserService(repo)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.Statistics.BlogPostsCount)
	assert.Equal(t, 7, profile.Statistics.CommentsCount)
	assert.Equal(t, 2, profile.Statistics.PhotosCount)
}
