package seed

import (
	"context"
	"testing"
	"time"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/models"
	"devconnector/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(&config.Config{
		DBDriver:       "sqlite",
		DBSQLitePath:   ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	tokens := auth.NewTokenService("seed-test-secret-that-is-long-enough", time.Hour)
	return NewSeeder(db, tokens, 42), db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRun_CreatesUsersProfilesAndPosts(t *testing.T) {
	s, db := newTestSeeder(t)
	ctx := context.Background()

	err := s.Run(ctx, Options{Users: 3, Posts: 4, MaxLikesPerPost: 3, MaxCommentsPerPost: 2})
	require.NoError(t, err)

	assert.EqualValues(t, 3, count(t, db, &models.User{}))
	assert.EqualValues(t, 3, count(t, db, &models.Profile{}))
	assert.EqualValues(t, 4, count(t, db, &models.Post{}))

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, p := range posts {
		assert.NotEmpty(t, p.Text)
		assert.NotEmpty(t, p.Name)
		seen := map[uint]bool{}
		for _, l := range p.Likes {
			assert.False(t, seen[l.User], "user %d liked post %d twice", l.User, p.ID)
			seen[l.User] = true
		}
		assert.LessOrEqual(t, len(p.Comments), 2)
	}

	var profiles []models.Profile
	require.NoError(t, db.Find(&profiles).Error)
	for _, p := range profiles {
		assert.NotEmpty(t, p.Skills)
		assert.NotEmpty(t, p.Experience)
		assert.NotEmpty(t, p.Education)
	}
}

func TestSeededUserCanLogIn(t *testing.T) {
	s, _ := newTestSeeder(t)
	user, err := s.CreateUser(context.Background())
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(user.Password, DefaultPassword))
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
}

func TestClearAll(t *testing.T) {
	s, db := newTestSeeder(t)
	ctx := context.Background()
	require.NoError(t, s.Run(ctx, Options{Users: 2, Posts: 2}))

	require.NoError(t, s.ClearAll(ctx))

	assert.Zero(t, count(t, db, &models.User{}))
	assert.Zero(t, count(t, db, &models.Profile{}))
	assert.Zero(t, count(t, db, &models.Post{}))
}

func TestBuilders_ProduceValidInput(t *testing.T) {
	s, _ := newTestSeeder(t)
	for i := 0; i < 20; i++ {
		exp := s.BuildExperienceInput()
		assert.NoError(t, validation.Struct(&exp))
		if exp.Current {
			assert.Empty(t, exp.To)
		}

		edu := s.BuildEducationInput()
		assert.NoError(t, validation.Struct(&edu))

		profile := s.BuildProfileInput()
		assert.NoError(t, validation.Struct(&profile))
		assert.GreaterOrEqual(t, len(profile.Skills), 2)
	}
}

func TestSeedPosts_NoUsers(t *testing.T) {
	s, _ := newTestSeeder(t)
	posts, err := s.SeedPosts(context.Background(), nil, Options{Posts: 5})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
