package postgres

import (
	"context"

	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRepository implements the generic repository contract for one
// entity/model pair. The concrete repositories embed it and add their typed
// finders; the mapper functions keep the domain entities free of GORM tags.
type gormRepository[E any, M any] struct {
	db         *gorm.DB
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	preloads   []string

	// Domain errors surfaced for the common constraint failures. notFound is
	// required; the others fall back to generic kinds when unset.
	notFound      *domainerrors.BaseError
	onConflict    *domainerrors.BaseError
	onFKViolation *domainerrors.BaseError

	label string
}

func (r *gormRepository[E, M]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, preload := range r.preloads {
		tx = tx.Preload(preload)
	}

	return tx
}

// GetAll returns every stored entity with its associations preloaded.
func (r *gormRepository[E, M]) GetAll(ctx context.Context) ([]*E, error) {
	var models []*M
	if err := r.query(ctx).Find(&models).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list "+r.label)
	}

	result := make([]*E, 0, len(models))
	for _, m := range models {
		result = append(result, r.toDomain(m))
	}

	return result, nil
}

// GetByID returns the entity with the given ID or the repository's not-found
// error.
func (r *gormRepository[E, M]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := r.query(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find "+r.label+" by id")
	}

	return r.toDomain(&m), nil
}

// Add persists a new entity. The generated ID and timestamps are written back
// into the given entity.
func (r *gormRepository[E, M]) Add(ctx context.Context, e *E) error {
	m := r.fromDomain(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.mapWriteError(err, "failed to create "+r.label)
	}

	*e = *r.toDomain(m)

	return nil
}

// Update saves the entity's current field values by primary key.
func (r *gormRepository[E, M]) Update(ctx context.Context, e *E) error {
	m := r.fromDomain(e)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return r.mapWriteError(result.Error, "failed to update "+r.label)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}

	*e = *r.toDomain(m)

	return nil
}

// Delete removes the entity by primary key.
func (r *gormRepository[E, M]) Delete(ctx context.Context, e *E) error {
	result := r.db.WithContext(ctx).Delete(r.fromDomain(e))
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete "+r.label)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}

	return nil
}

func (r *gormRepository[E, M]) mapWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if r.onConflict != nil {
			return r.onConflict
		}

		return domainerrors.ErrConflict.WithDetails(details)
	}
	if isForeignKeyConstraintViolation(err) {
		if r.onFKViolation != nil {
			return r.onFKViolation
		}

		return domainerrors.ErrInvalidArgument.WithDetails("referenced record does not exist")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrInvalidArgument.WithDetails("required field is missing")
	}

	return domainerrors.NewPersistenceError(err, details)
}
