package service

import (
	"context"
	"testing"

	"devconnector/internal/database"
	"devconnector/internal/models"
	"devconnector/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db       *gorm.DB
	users    repository.UserRepository
	profiles repository.ProfileRepository
	posts    repository.PostRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	users := repository.NewUserRepository(db, nil)
	return &fixture{
		db:       db,
		users:    users,
		profiles: repository.NewProfileRepository(db, users),
		posts:    repository.NewPostRepository(db),
	}
}

func (f *fixture) user(t *testing.T, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "hash", Avatar: "//avatar/" + name}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func assertCode(t *testing.T, err error, code, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr := models.AsAppError(err)
	require.Equal(t, code, appErr.Code, "error: %v", err)
	if msg != "" {
		require.Equal(t, msg, appErr.Message)
	}
}
