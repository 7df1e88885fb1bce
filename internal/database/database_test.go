package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"devconnector/internal/config"
	"devconnector/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		DBDriver:                 "sqlite",
		DBSQLitePath:             ":memory:",
		DBMaxOpenConns:           1,
		DBMaxIdleConns:           1,
		DBConnMaxLifetimeMinutes: 15,
	}
}

func TestConnect_SQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	for _, model := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Ping(context.Background(), db))
}

func TestConnect_UniqueEmailTranslated(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Create(&models.User{Name: "a", Email: "dup@example.com", Password: "x"}).Error)
	err = db.Create(&models.User{Name: "b", Email: "dup@example.com", Password: "x"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestConnect_JSONColumnsRoundTrip(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	post := models.NewPost(&models.User{ID: 1, Name: "Alice"}, "hello", time.Now())
	post.Likes = append(post.Likes, models.Like{ID: "l1", User: 2})
	require.NoError(t, db.Create(post).Error)

	var loaded models.Post
	require.NoError(t, db.First(&loaded, post.ID).Error)
	assert.Equal(t, []models.Like{{ID: "l1", User: 2}}, []models.Like(loaded.Likes))
	assert.NotNil(t, loaded.Comments)
	assert.Empty(t, loaded.Comments)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: "postgres", DBHost: "localhost", DBPort: "5432"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(&config.Config{DBDriver: "sqlite"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Dialector(&config.Config{DBDriver: "mongodb"})
	assert.Error(t, err)
}

func TestOpenWith_ClosesHandleWhenMigrationFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	// Every schema query fails; the only call expected is the close.
	mock.ExpectClose()

	db, err := openWith(postgres.New(postgres.Config{Conn: sqlDB}), sqliteConfig())
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to migrate database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, Close(nil))
}

func TestPersistentModels(t *testing.T) {
	var sawUser, sawProfile, sawPost bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *models.User:
			sawUser = true
		case *models.Profile:
			sawProfile = true
		case *models.Post:
			sawPost = true
		}
	}
	assert.True(t, sawUser && sawProfile && sawPost)
}

func TestSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)), logger.Warn)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record-not-found is not an error worth logging")

	l.Trace(context.Background(), time.Now(), sql, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "syntax error")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sql, errors.New("ignored"))
	assert.Empty(t, buf.String())
}
