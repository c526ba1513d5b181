package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brashfox-backend/internal/domains/comment"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
)

type fakeCommentRepository struct {
	comments map[int64]*comment.PostComment
	nextID   int64
	postIDs  map[int64]bool
}

func newFakeCommentRepository(postIDs ...int64) *fakeCommentRepository {
	known := make(map[int64]bool, len(postIDs))
	for _, id := range postIDs {
		known[id] = true
	}
	return &fakeCommentRepository{
		comments: make(map[int64]*comment.PostComment),
		nextID:   1,
		postIDs:  known,
	}
}

func (r *fakeCommentRepository) Create(_ context.Context, c *comment.PostComment) (int64, error) {
	if !r.postIDs[c.PostID] {
		return 0, comment.ErrPostNotFound
	}
	id := r.nextID
	r.nextID++
	c.ID = id
	c.Created = time.Now()
	c.Edited = c.Created
	stored := *c
	r.comments[id] = &stored
	return id, nil
}

func (r *fakeCommentRepository) FindByID(_ context.Context, id int64) (*comment.PostComment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	found := *c
	return &found, nil
}

func (r *fakeCommentRepository) List(_ context.Context, postID *int64, _, _ int) ([]comment.PostComment, int, error) {
	comments := make([]comment.PostComment, 0, len(r.comments))
	for _, c := range r.comments {
		if postID != nil && c.PostID != *postID {
			continue
		}
		comments = append(comments, *c)
	}
	return comments, len(comments), nil
}

func (r *fakeCommentRepository) ListForPostSlug(_ context.Context, _ string) ([]comment.PostComment, error) {
	return nil, comment.ErrPostNotFound
}

func (r *fakeCommentRepository) Update(_ context.Context, c *comment.PostComment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return comment.ErrCommentNotFound
	}
	c.Edited = time.Now()
	stored := *c
	r.comments[c.ID] = &stored
	return nil
}

func (r *fakeCommentRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

var caller = &permission.Identity{UserID: 5, Username: "carol"}

func TestCreateStampsAuthorFromIdentity(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	created, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "A perfectly fine comment.",
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", created.Author)
}

func TestCreateRejectsMissingPost(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	_, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  99,
		Comment: "A perfectly fine comment.",
	})
	assert.ErrorIs(t, err, comment.ErrPostNotFound)
}

func TestCreateEnforcesCommentBounds(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	_, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID: 1, Comment: "short",
	})
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)

	_, err = svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID: 1, Comment: strings.Repeat("c", 1001),
	})
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)

	// Exact bounds are accepted.
	_, err = svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID: 1, Comment: strings.Repeat("c", 10),
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID: 1, Comment: strings.Repeat("c", 1000),
	})
	assert.NoError(t, err)
}

func TestCreatePersistsTrimmedBody(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	created, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "   a perfectly valid comment body   ",
	})
	require.NoError(t, err)
	assert.Equal(t, "a perfectly valid comment body", created.Comment)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a perfectly valid comment body", stored.Comment)

	// A body whose trimmed length sits exactly at the upper bound must fit
	// the column even when padded with whitespace.
	created, err = svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "  " + strings.Repeat("c", 1000) + "  ",
	})
	require.NoError(t, err)
	assert.Len(t, created.Comment, 1000)
}

func TestUpdatePersistsTrimmedBody(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	created, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "The original comment text.",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created, comment.UpdateRequest{
		Comment: "\n\tThe edited comment text.\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "The edited comment text.", updated.Comment)
}

func TestUpdateBumpsEditedTimestamp(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	created, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "The original comment text.",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Created, created.Edited)

	before := created.Edited
	time.Sleep(time.Millisecond)

	updated, err := svc.Update(context.Background(), created, comment.UpdateRequest{
		Comment: "The edited comment text.",
	})
	require.NoError(t, err)
	assert.True(t, updated.Edited.After(before))
	assert.Equal(t, created.Created, updated.Created)
}

func TestUpdateKeepsAuthorAndPost(t *testing.T) {
	repo := newFakeCommentRepository(1)
	svc := NewCommentService(repo)

	created, err := svc.Create(context.Background(), caller, comment.CreateRequest{
		PostID:  1,
		Comment: "The original comment text.",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created, comment.UpdateRequest{
		Comment: "The edited comment text.",
	})
	require.NoError(t, err)
	assert.Equal(t, "The edited comment text.", updated.Comment)
	assert.Equal(t, "carol", updated.Author)
	assert.Equal(t, int64(1), updated.PostID)
}
