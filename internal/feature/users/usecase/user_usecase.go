package usecase

import (
	"context"
	"fmt"
	"time"

	"user_backend/internal/feature/users/domain/entity"
)

// birthDateLayout is the textual form accepted by the birthdate range search.
const birthDateLayout = "2006-01-02"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Save persists the user, inserting when the ID is zero and updating
	// otherwise. The returned user carries the storage-assigned ID.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Delete removes a previously located record.
	Delete(ctx context.Context, user *entity.User) error

	// FindAll returns every stored user.
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByBirthDateRange returns users whose birthdate falls within
	// the inclusive range [from, to].
	FindByBirthDateRange(ctx context.Context, from, to time.Time) ([]entity.User, error)
}

// userUsecase implements the user lifecycle operations.
type userUsecase struct {
	users  UserRepository
	minAge int
}

// NewUserUsecase creates a new instance of userUsecase.
// minAge is the minimum allowed age in whole years, fixed after startup.
func NewUserUsecase(users UserRepository, minAge int) *userUsecase {
	return &userUsecase{
		users:  users,
		minAge: minAge,
	}
}

// Create registers a new user after validating the age requirement.
// The identifier of the input is ignored; storage assigns a fresh one.
func (u *userUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := u.validateAge(user.BirthDate); err != nil {
		return nil, err
	}
	user.ID = 0
	return u.users.Save(ctx, user)
}

// UpdateFullName overwrites the stored first/last name with the given
// values, leaving either name untouched when its replacement is empty.
// No age validation is performed.
func (u *userUsecase) UpdateFullName(ctx context.Context, id uint, firstName, lastName string) (*entity.User, error) {
	user, err := u.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	return u.users.Save(ctx, user)
}

// Update replaces every field of the stored user with the incoming
// payload, except the identifier which is always kept from the stored
// record. The payload must pass the same age validation as Create.
func (u *userUsecase) Update(ctx context.Context, id uint, user *entity.User) (*entity.User, error) {
	if err := u.validateAge(user.BirthDate); err != nil {
		return nil, err
	}
	existing, err := u.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Email = user.Email
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.BirthDate = user.BirthDate
	existing.Address = user.Address
	existing.PhoneNumber = user.PhoneNumber
	return u.users.Save(ctx, existing)
}

// Delete removes the user with the given ID.
// It returns ErrUserNotFound if no such user exists.
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	user, err := u.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return u.users.Delete(ctx, user)
}

// FindByID retrieves a user by ID. Every mutating operation funnels its
// existence check through this method, so ErrUserNotFound propagates
// uniformly.
func (u *userUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// FindAll returns every stored user.
func (u *userUsecase) FindAll(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// FindByBirthDateRange returns users born within the inclusive range
// [fromDate, toDate], both given as YYYY-MM-DD text. A malformed bound is
// an internal error, not a typed domain failure.
func (u *userUsecase) FindByBirthDateRange(ctx context.Context, fromDate, toDate string) ([]entity.User, error) {
	from, err := time.Parse(birthDateLayout, fromDate)
	if err != nil {
		return nil, fmt.Errorf("parse from date %q: %w", fromDate, err)
	}
	to, err := time.Parse(birthDateLayout, toDate)
	if err != nil {
		return nil, fmt.Errorf("parse to date %q: %w", toDate, err)
	}
	return u.users.FindByBirthDateRange(ctx, from, to)
}

// validateAge rejects a zero birthdate and any birthdate whose age falls
// below the configured minimum. The age is a pure year difference, same
// as the system this service replaced: month and day are ignored, so a
// user reaching the minimum age on December 31st is accepted all year.
func (u *userUsecase) validateAge(birthDate time.Time) error {
	if birthDate.IsZero() {
		return fmt.Errorf("%w: birthdate is required", ErrInvalidUserAge)
	}
	if time.Now().Year()-birthDate.Year() < u.minAge {
		return fmt.Errorf("%w: user must be at least %d years old", ErrInvalidUserAge, u.minAge)
	}
	return nil
}
