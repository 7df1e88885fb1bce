package service

import (
	"context"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/subdoc"
	"devconnector/internal/validation"
)

type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
	now   func() time.Time
}

type PostInput struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

type CommentInput struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users, now: time.Now}
}

// WithClock overrides the time source used to stamp posts and comments.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// Create publishes a post, snapshotting the author's current name and avatar.
func (s *PostService) Create(ctx context.Context, userID uint, in PostInput) (*models.Post, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := models.NewPost(author, in.Text, s.now())
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateText changes the text of a post owned by the caller.
func (s *PostService) UpdateText(ctx context.Context, userID, postID uint, in PostInput) (*models.Post, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(post.UserID, userID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post owned by the caller.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(post.UserID, userID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, postID)
}

// Like records the caller's like at the front of the list and returns the likes.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if subdoc.IndexWhere(post.Likes, likedBy(userID)) >= 0 {
		return nil, models.NewValidationError("Post already liked")
	}

	post.Likes, _ = subdoc.InsertFront(post.Likes, models.Like{User: userID})
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the caller's like and returns the remaining likes.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	i := subdoc.IndexWhere(post.Likes, likedBy(userID))
	if i < 0 {
		return nil, models.NewValidationError("Post has not yet been liked")
	}

	post.Likes = subdoc.RemoveAt(post.Likes, i)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment appends the caller's comment and returns all comments, oldest first.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, in CommentInput) ([]models.Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Comments, _ = subdoc.Append(post.Comments, models.Comment{
		User:   userID,
		Text:   in.Text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   s.now(),
	})
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// UpdateComment edits the text of the caller's own comment.
func (s *PostService) UpdateComment(ctx context.Context, userID, postID uint, commentID string, in CommentInput) ([]models.Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	post, err := s.ownComment(ctx, userID, postID, commentID)
	if err != nil {
		return nil, err
	}

	updated, _, err := subdoc.UpdateByID(post.Comments, commentID, models.Comment{Text: in.Text})
	if err != nil {
		return nil, elementNotFound(err, "Comment")
	}
	post.Comments = updated
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment deletes the caller's own comment.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID uint, commentID string) ([]models.Comment, error) {
	post, err := s.ownComment(ctx, userID, postID, commentID)
	if err != nil {
		return nil, err
	}

	remaining, err := subdoc.RemoveByID(post.Comments, commentID)
	if err != nil {
		return nil, elementNotFound(err, "Comment")
	}
	post.Comments = remaining
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *PostService) ownComment(ctx context.Context, userID, postID uint, commentID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment, err := subdoc.FindByID(post.Comments, commentID)
	if err != nil {
		return nil, elementNotFound(err, "Comment")
	}
	if err := AuthorizeMutation(comment.User, userID); err != nil {
		return nil, err
	}
	return post, nil
}

func likedBy(userID uint) func(models.Like) bool {
	return func(l models.Like) bool { return l.User == userID }
}
