package service

import (
	"context"
	"testing"
	"time"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	listFn    func(context.Context) ([]*models.Post, error)
	getByIDFn func(context.Context, uint) (*models.Post, error)
	createFn  func(context.Context, *models.Post) error
	saveFn    func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
}

func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) { return s.listFn(ctx) }
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Save(ctx context.Context, post *models.Post) error { return s.saveFn(ctx, post) }
func (s *postRepoStub) Delete(ctx context.Context, id uint) error         { return s.deleteFn(ctx, id) }

// failOnWrite returns a stub serving post and failing the test on any write.
func failOnWrite(t *testing.T, post *models.Post) *postRepoStub {
	return &postRepoStub{
		listFn:    func(_ context.Context) ([]*models.Post, error) { return []*models.Post{post}, nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return post, nil },
		createFn: func(_ context.Context, _ *models.Post) error {
			t.Fatal("unexpected Create")
			return nil
		},
		saveFn: func(_ context.Context, _ *models.Post) error {
			t.Fatal("unexpected Save")
			return nil
		},
		deleteFn: func(_ context.Context, _ uint) error {
			t.Fatal("unexpected Delete")
			return nil
		},
	}
}

func ownedPost() *models.Post {
	return &models.Post{
		ID:     1,
		UserID: 10,
		Text:   "original",
		Likes:  datatypes.JSONSlice[models.Like]{},
		Comments: datatypes.JSONSlice[models.Comment]{
			{ID: "c1", User: 20, Text: "by twenty"},
		},
	}
}

func TestPostService_NonOwnerRejectedWithoutWrites(t *testing.T) {
	ctx := context.Background()
	const stranger = uint(99)

	tests := []struct {
		name string
		call func(*PostService) error
	}{
		{"edit post", func(s *PostService) error {
			_, err := s.UpdateText(ctx, stranger, 1, PostInput{Text: "hijacked"})
			return err
		}},
		{"delete post", func(s *PostService) error {
			return s.Delete(ctx, stranger, 1)
		}},
		{"edit comment", func(s *PostService) error {
			_, err := s.UpdateComment(ctx, stranger, 1, "c1", CommentInput{Text: "hijacked"})
			return err
		}},
		{"delete comment", func(s *PostService) error {
			_, err := s.RemoveComment(ctx, stranger, 1, "c1")
			return err
		}},
		{"post owner cannot delete another's comment", func(s *PostService) error {
			_, err := s.RemoveComment(ctx, 10, 1, "c1")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := ownedPost()
			svc := NewPostService(failOnWrite(t, post), new(mockUserRepo))

			assertCode(t, tt.call(svc), models.CodeForbidden, "User not authorized")
			assert.Equal(t, ownedPost(), post, "state must be unchanged after rejection")
		})
	}
}

func TestPostService_MissingCommentIsNotFound(t *testing.T) {
	post := ownedPost()
	svc := NewPostService(failOnWrite(t, post), new(mockUserRepo))

	_, err := svc.RemoveComment(context.Background(), 20, 1, "nope")
	assertCode(t, err, models.CodeNotFound, "Comment not found")
}

func TestPostService_EmptyTextRejected(t *testing.T) {
	post := ownedPost()
	svc := NewPostService(failOnWrite(t, post), new(mockUserRepo))
	ctx := context.Background()

	_, err := svc.Create(ctx, 10, PostInput{Text: "   "})
	assertCode(t, err, models.CodeValidation, "Text is required")

	_, err = svc.AddComment(ctx, 10, 1, CommentInput{})
	assertCode(t, err, models.CodeValidation, "Text is required")
}

func newPostService(t *testing.T, now time.Time) (*PostService, *fixture) {
	f := newFixture(t)
	return NewPostService(f.posts, f.users).WithClock(func() time.Time { return now }), f
}

func TestPostService_CreateSnapshotsAuthor(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc, f := newPostService(t, now)
	ctx := context.Background()
	alice := f.user(t, "Alice", "alice@example.com")

	post, err := svc.Create(ctx, alice.ID, PostInput{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, post.UserID)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, "//avatar/Alice", post.Avatar)
	assert.True(t, now.Equal(post.Date))

	require.NoError(t, f.db.Model(&models.User{}).Where("id = ?", alice.ID).Update("name", "Alicia").Error)
	stored, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name, "snapshot is never refreshed")
}

func TestPostService_EditAndDelete(t *testing.T) {
	svc, f := newPostService(t, time.Now())
	ctx := context.Background()
	alice := f.user(t, "Alice", "alice@example.com")
	bob := f.user(t, "Bob", "bob@example.com")

	post, err := svc.Create(ctx, alice.ID, PostInput{Text: "v1"})
	require.NoError(t, err)

	_, err = svc.UpdateText(ctx, bob.ID, post.ID, PostInput{Text: "bob was here"})
	assertCode(t, err, models.CodeForbidden, "User not authorized")

	edited, err := svc.UpdateText(ctx, alice.ID, post.ID, PostInput{Text: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", edited.Text)

	assertCode(t, svc.Delete(ctx, bob.ID, post.ID), models.CodeForbidden, "User not authorized")
	require.NoError(t, svc.Delete(ctx, alice.ID, post.ID))

	_, err = svc.Get(ctx, post.ID)
	assertCode(t, err, models.CodeNotFound, "Post not found")
	assertCode(t, svc.Delete(ctx, alice.ID, post.ID), models.CodeNotFound, "Post not found")
}

func TestPostService_LikeUnlike(t *testing.T) {
	svc, f := newPostService(t, time.Now())
	ctx := context.Background()
	alice := f.user(t, "Alice", "alice@example.com")
	bob := f.user(t, "Bob", "bob@example.com")

	post, err := svc.Create(ctx, alice.ID, PostInput{Text: "like me"})
	require.NoError(t, err)

	likes, err := svc.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	before := append([]models.Like(nil), likes...)

	_, err = svc.Like(ctx, alice.ID, post.ID)
	assertCode(t, err, models.CodeValidation, "Post already liked")

	_, err = svc.Unlike(ctx, bob.ID, post.ID)
	assertCode(t, err, models.CodeValidation, "Post has not yet been liked")

	likes, err = svc.Like(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, bob.ID, likes[0].User, "newest like first")

	likes, err = svc.Unlike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, before, likes, "like then unlike restores the list")

	_, err = svc.Like(ctx, alice.ID, 999)
	assertCode(t, err, models.CodeNotFound, "Post not found")
}

func TestPostService_Comments(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc, f := newPostService(t, now)
	ctx := context.Background()
	alice := f.user(t, "Alice", "alice@example.com")
	bob := f.user(t, "Bob", "bob@example.com")

	post, err := svc.Create(ctx, alice.ID, PostInput{Text: "discuss"})
	require.NoError(t, err)

	comments, err := svc.AddComment(ctx, bob.ID, post.ID, CommentInput{Text: "first"})
	require.NoError(t, err)
	comments, err = svc.AddComment(ctx, alice.ID, post.ID, CommentInput{Text: "second"})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text, "comments are appended")
	assert.Equal(t, "Bob", comments[0].Name)
	assert.True(t, now.Equal(comments[0].Date))

	bobsComment := comments[0].ID
	comments, err = svc.UpdateComment(ctx, bob.ID, post.ID, bobsComment, CommentInput{Text: "first, edited"})
	require.NoError(t, err)
	assert.Equal(t, bobsComment, comments[0].ID)
	assert.Equal(t, "first, edited", comments[0].Text)
	assert.Equal(t, "Bob", comments[0].Name)

	_, err = svc.RemoveComment(ctx, alice.ID, post.ID, bobsComment)
	assertCode(t, err, models.CodeForbidden, "User not authorized")

	comments, err = svc.RemoveComment(ctx, bob.ID, post.ID, bobsComment)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)
}

func TestPostService_ListNewestFirst(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, text := range []string{"one", "two", "three"} {
		at := base.Add(time.Duration(i) * time.Hour)
		svc := NewPostService(f.posts, f.users).WithClock(func() time.Time { return at })
		_, err := svc.Create(ctx, alice.ID, PostInput{Text: text})
		require.NoError(t, err)
	}

	posts, err := NewPostService(f.posts, f.users).List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "three", posts[0].Text)
	assert.Equal(t, "one", posts[2].Text)
}
