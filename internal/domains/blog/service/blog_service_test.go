package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brashfox-backend/internal/domains/blog"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
)

// fakeBlogRepository keeps posts in memory, keyed by slug.
type fakeBlogRepository struct {
	posts     map[string]*blog.BlogPost
	nextID    int64
	createErr error
}

func newFakeBlogRepository() *fakeBlogRepository {
	return &fakeBlogRepository{posts: make(map[string]*blog.BlogPost), nextID: 1}
}

func (r *fakeBlogRepository) Create(_ context.Context, post *blog.BlogPost, _ []int64) (int64, error) {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return 0, err
	}
	if _, ok := r.posts[post.Slug]; ok {
		return 0, blog.ErrSlugAlreadyExists
	}
	id := r.nextID
	r.nextID++
	stored := *post
	stored.ID = id
	r.posts[post.Slug] = &stored
	return id, nil
}

func (r *fakeBlogRepository) FindBySlug(_ context.Context, slug string) (*blog.BlogPost, error) {
	post, ok := r.posts[slug]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	found := *post
	return &found, nil
}

func (r *fakeBlogRepository) List(_ context.Context, _, _ int) ([]blog.BlogPost, int, error) {
	posts := make([]blog.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	return posts, len(posts), nil
}

func (r *fakeBlogRepository) Update(_ context.Context, post *blog.BlogPost, _ *[]int64) error {
	if _, ok := r.posts[post.Slug]; !ok {
		return blog.ErrPostNotFound
	}
	stored := *post
	r.posts[post.Slug] = &stored
	return nil
}

func (r *fakeBlogRepository) Delete(_ context.Context, id int64) error {
	for slug, p := range r.posts {
		if p.ID == id {
			delete(r.posts, slug)
			return nil
		}
	}
	return blog.ErrPostNotFound
}

func (r *fakeBlogRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := r.posts[slug]
	return ok, nil
}

var author = &permission.Identity{UserID: 1, Username: "alice"}

func validCreateRequest(title string) blog.CreateRequest {
	return blog.CreateRequest{
		Title: title,
		Post:  strings.Repeat("content ", 10),
	}
}

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	dto, err := svc.CreatePost(context.Background(), author, validCreateRequest("My First Post"))
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", dto.Slug)
	assert.Equal(t, author.UserID, dto.AuthorID)
}

func TestCreatePostPersistsTrimmedText(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	req := blog.CreateRequest{
		Title: "  My Padded Title  ",
		Post:  "  " + strings.Repeat("p", 50000) + "  ",
	}
	dto, err := svc.CreatePost(context.Background(), author, req)
	require.NoError(t, err)
	assert.Equal(t, "My Padded Title", dto.Title)
	assert.Len(t, dto.Post, 50000)
	assert.Equal(t, "my-padded-title", dto.Slug)
}

func TestCreatePostKeepsExplicitSlug(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	req := validCreateRequest("My First Post")
	req.Slug = "custom_slug"

	dto, err := svc.CreatePost(context.Background(), author, req)
	require.NoError(t, err)
	assert.Equal(t, "custom_slug", dto.Slug)
}

func TestCreatePostResolvesSlugCollisions(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	first, err := svc.CreatePost(context.Background(), author, validCreateRequest("Same Title"))
	require.NoError(t, err)
	second, err := svc.CreatePost(context.Background(), author, validCreateRequest("Same Title"))
	require.NoError(t, err)
	third, err := svc.CreatePost(context.Background(), author, validCreateRequest("Same Title"))
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.Equal(t, "same-title-1", second.Slug)
	assert.Equal(t, "same-title-2", third.Slug)
}

func TestCreatePostRetriesOnceOnConcurrentSlugRace(t *testing.T) {
	repo := newFakeBlogRepository()
	// Simulate a concurrent writer grabbing the slug between the existence
	// check and the insert: the first insert fails on the constraint, the
	// retry succeeds.
	repo.createErr = blog.ErrSlugAlreadyExists
	svc := NewBlogService(repo)

	dto, err := svc.CreatePost(context.Background(), author, validCreateRequest("Raced Title"))
	require.NoError(t, err)
	assert.Equal(t, "raced-title", dto.Slug)
}

func TestCreatePostRejectsOutOfBoundsFields(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	short := validCreateRequest("Hey") // below the title minimum
	_, err := svc.CreatePost(context.Background(), author, short)
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)

	thin := validCreateRequest("A Valid Title")
	thin.Post = "too short"
	_, err = svc.CreatePost(context.Background(), author, thin)
	assert.ErrorIs(t, err, validation.ErrOutOfBounds)
}

func TestCreatePostRejectsTitleWithNoSlugMaterial(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	req := validCreateRequest("!!!!!")
	_, err := svc.CreatePost(context.Background(), author, req)
	assert.ErrorIs(t, err, validation.ErrInvalidFormat)
}

func TestUpdatePostIgnoresSlugField(t *testing.T) {
	repo := newFakeBlogRepository()
	svc := NewBlogService(repo)

	created, err := svc.CreatePost(context.Background(), author, validCreateRequest("Original Title"))
	require.NoError(t, err)

	post, err := svc.GetPost(context.Background(), created.Slug)
	require.NoError(t, err)

	newTitle := "A Changed Title"
	newSlug := "hijacked-slug"
	updated, err := svc.UpdatePost(context.Background(), post, blog.UpdateRequest{
		Title: &newTitle,
		Slug:  &newSlug,
	})
	require.NoError(t, err)

	assert.Equal(t, "A Changed Title", updated.Title)
	assert.Equal(t, "original-title", updated.Slug)
}
