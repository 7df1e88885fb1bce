// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"devconnector/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// mapError converts a driver error into the application taxonomy.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource)
	}
	return models.NewInternalError(err)
}

// replaceRow overwrites every column of an existing row. Unlike gorm's Save it
// never falls back to an insert, so a concurrently deleted row is not recreated.
func replaceRow(ctx context.Context, db *gorm.DB, model any, id uint, resource string) error {
	if id == 0 {
		return models.NewNotFoundError(resource)
	}
	result := db.WithContext(ctx).Model(model).Select("*").Omit("id").Where("id = ?", id).Updates(model)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError(resource)
	}
	return nil
}
