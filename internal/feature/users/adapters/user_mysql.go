// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// userMySQL is the gorm-backed implementation of the UserRepository interface.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check that userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Save upserts the user: gorm inserts when the primary key is zero and
// updates the matching row otherwise. The stored representation, with
// the ID populated, is returned.
func (r *userMySQL) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes the given record from the database.
func (r *userMySQL) Delete(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}

// FindAll returns every stored user in storage order.
func (r *userMySQL) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByBirthDateRange returns users whose birth_date lies within the
// inclusive range [from, to].
func (r *userMySQL) FindByBirthDateRange(ctx context.Context, from, to time.Time) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where("birth_date BETWEEN ? AND ?", from, to).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
