// Package repository is the data access chokepoint. All reads by primary key
// funnel through GetByID so not-found behavior is identical for every entity;
// mutations are staged on the request's unit of work and committed by the
// handler.
package repository

import (
	"context"
	"errors"
	"strings"

	"adboard/internal/database"
	"adboard/internal/models"
	"adboard/internal/observability"

	"gorm.io/gorm"
)

// GetByID fetches a record by primary key within the given unit of work.
// Returns a typed not-found error when no such record exists.
func GetByID[T any](ctx context.Context, uow *database.UnitOfWork, resource string, id uint) (*T, error) {
	defer observability.TrackQuery("get", resource)()

	var item T
	if err := uow.DB().WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(resource, id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

// Create stages an insert for the record. Unique constraint violations are
// mapped to a conflict error so callers never see a raw storage fault for a
// duplicate.
func Create[T any](ctx context.Context, uow *database.UnitOfWork, resource string, item *T) error {
	defer observability.TrackQuery("create", resource)()

	if err := uow.DB().WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(resource + " already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Save stages an update of all fields of the record.
func Save[T any](ctx context.Context, uow *database.UnitOfWork, resource string, item *T) error {
	defer observability.TrackQuery("save", resource)()

	if err := uow.DB().WithContext(ctx).Save(item).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(resource + " already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Delete stages removal of the record. Dependent rows are removed by the
// database through cascading constraints.
func Delete[T any](ctx context.Context, uow *database.UnitOfWork, resource string, item *T) error {
	defer observability.TrackQuery("delete", resource)()

	if err := uow.DB().WithContext(ctx).Delete(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Commit finalizes the unit of work. Deferred constraint checks can still
// report a uniqueness violation here, so the same conflict mapping applies.
func Commit(uow *database.UnitOfWork, resource string) error {
	if err := uow.Commit(); err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(resource + " already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
