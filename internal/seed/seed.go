// Package seed populates a development database with fake users, profiles
// and posts. Data goes through the same services the API uses, so every
// seeded row satisfies the API's own validation.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"devconnector/internal/auth"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

// Options controls how much data a Seeder creates.
type Options struct {
	Users              int
	Posts              int
	MaxLikesPerPost    int
	MaxCommentsPerPost int
}

// Seeder creates demo data through the application services.
type Seeder struct {
	db       *gorm.DB
	users    repository.UserRepository
	auth     *service.AuthService
	profiles *service.ProfileService
	posts    *service.PostService
	rnd      *rand.Rand
	faker    *gofakeit.Faker
}

// NewSeeder wires a Seeder against db. The same seed reproduces the same data.
func NewSeeder(db *gorm.DB, tokens *auth.TokenService, seed int64) *Seeder {
	users := repository.NewUserRepository(db, nil)
	profiles := repository.NewProfileRepository(db, users)
	posts := repository.NewPostRepository(db)

	return &Seeder{
		db:       db,
		users:    users,
		auth:     service.NewAuthService(users, tokens),
		profiles: service.NewProfileService(profiles, users),
		posts:    service.NewPostService(posts, users),
		rnd:      rand.New(rand.NewSource(seed)),
		faker:    gofakeit.New(seed),
	}
}

// ClearAll removes every post, profile and user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Post{}, &models.Profile{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Run seeds users with profiles, then posts with likes and comments.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	users, err := s.SeedUsers(ctx, opts.Users)
	if err != nil {
		return err
	}
	for _, u := range users {
		if _, err := s.SeedProfile(ctx, u); err != nil {
			return err
		}
	}
	_, err = s.SeedPosts(ctx, users, opts)
	return err
}

// SeedUsers registers n users, all with DefaultPassword.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.CreateUser(ctx)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	middleware.Logger.Info("Seeded users", slog.Int("count", len(users)))
	return users, nil
}

// SeedPosts creates n posts by random authors, each liked and commented on
// by a random subset of users.
func (s *Seeder) SeedPosts(ctx context.Context, users []*models.User, opts Options) ([]*models.Post, error) {
	if len(users) == 0 || opts.Posts <= 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, opts.Posts)
	var likes, comments int
	for i := 0; i < opts.Posts; i++ {
		author := users[s.rnd.Intn(len(users))]
		post, err := s.CreatePost(ctx, author)
		if err != nil {
			return nil, err
		}

		for _, u := range s.pick(users, opts.MaxLikesPerPost) {
			if _, err := s.posts.Like(ctx, u.ID, post.ID); err != nil {
				return nil, fmt.Errorf("like post %d: %w", post.ID, err)
			}
			likes++
		}
		for _, u := range s.pick(users, opts.MaxCommentsPerPost) {
			in := service.CommentInput{Text: s.faker.Sentence(s.rnd.Intn(12) + 3)}
			if _, err := s.posts.AddComment(ctx, u.ID, post.ID, in); err != nil {
				return nil, fmt.Errorf("comment on post %d: %w", post.ID, err)
			}
			comments++
		}
		posts = append(posts, post)
	}

	middleware.Logger.Info("Seeded posts",
		slog.Int("posts", len(posts)),
		slog.Int("likes", likes),
		slog.Int("comments", comments),
	)
	return posts, nil
}

// pick returns up to limit distinct users in random order.
func (s *Seeder) pick(users []*models.User, limit int) []*models.User {
	if limit <= 0 {
		return nil
	}
	n := s.rnd.Intn(min(limit, len(users)) + 1)
	picked := make([]*models.User, 0, n)
	for _, i := range s.rnd.Perm(len(users))[:n] {
		picked = append(picked, users[i])
	}
	return picked
}
