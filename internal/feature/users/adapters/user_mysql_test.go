package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func birthDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestUser(email string, born time.Time) *entity.User {
	return &entity.User{
		Email:       email,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		BirthDate:   born,
		Address:     "London",
		PhoneNumber: "+440000000000",
	}
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Save(t *testing.T) {
	t.Run("insert assigns an identifier", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("ada@example.com", birthDate(1990, time.March, 15))
		saved, err := repo.Save(context.Background(), user)

		assert.NoError(t, err, "failed to save user")
		assert.NotZero(t, saved.ID, "ID is not set")
		assert.False(t, saved.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("save with existing identifier updates in place", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("ada@example.com", birthDate(1990, time.March, 15))
		saved, err := repo.Save(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		saved.FirstName = "Augusta"
		_, err = repo.Save(context.Background(), saved)
		require.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), saved.ID)
		require.NoError(t, err, "failed to reload user")
		assert.Equal(t, "Augusta", found.FirstName, "first name was not updated")

		all, err := repo.FindAll(context.Background())
		require.NoError(t, err, "failed to list users")
		assert.Len(t, all, 1, "update must not create a second row")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected, err := repo.Save(context.Background(), newTestUser("find@example.com", birthDate(1985, time.July, 1)))
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.FirstName, found.FirstName, "first name does not match")
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 12345)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_Delete(t *testing.T) {
	t.Run("deleted user is no longer findable", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		saved, err := repo.Save(context.Background(), newTestUser("gone@example.com", birthDate(1970, time.January, 2)))
		require.NoError(t, err, "failed to create test data")

		err = repo.Delete(context.Background(), saved)
		assert.NoError(t, err, "failed to delete user")

		_, err = repo.FindByID(context.Background(), saved.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "deleted user should not be found")
	})
}

func TestUserMySQL_FindAll(t *testing.T) {
	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err, "failed to list users")
		assert.Empty(t, users, "expected no users")
	})

	t.Run("returns every stored user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.Save(context.Background(), newTestUser("a@example.com", birthDate(1990, time.March, 15)))
		require.NoError(t, err, "failed to create test data")
		_, err = repo.Save(context.Background(), newTestUser("b@example.com", birthDate(1992, time.May, 20)))
		require.NoError(t, err, "failed to create test data")

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err, "failed to list users")
		assert.Len(t, users, 2, "expected both users")
	})
}

func TestUserMySQL_FindByBirthDateRange(t *testing.T) {
	seed := func(t *testing.T, repo *userMySQL) (uint, uint, uint) {
		t.Helper()
		a, err := repo.Save(context.Background(), newTestUser("from@example.com", birthDate(2022, time.January, 1)))
		require.NoError(t, err, "failed to create test data")
		b, err := repo.Save(context.Background(), newTestUser("mid@example.com", birthDate(2022, time.June, 15)))
		require.NoError(t, err, "failed to create test data")
		c, err := repo.Save(context.Background(), newTestUser("to@example.com", birthDate(2022, time.December, 31)))
		require.NoError(t, err, "failed to create test data")
		_, err = repo.Save(context.Background(), newTestUser("outside@example.com", birthDate(2023, time.January, 1)))
		require.NoError(t, err, "failed to create test data")
		return a.ID, b.ID, c.ID
	}

	t.Run("range is inclusive on both ends", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		fromID, midID, toID := seed(t, repo)

		users, err := repo.FindByBirthDateRange(context.Background(),
			birthDate(2022, time.January, 1), birthDate(2022, time.December, 31))

		assert.NoError(t, err, "range query failed")
		require.Len(t, users, 3, "expected exactly the three 2022 users")
		ids := []uint{users[0].ID, users[1].ID, users[2].ID}
		assert.Contains(t, ids, fromID, "user born on the from bound must be included")
		assert.Contains(t, ids, midID, "user born inside the range must be included")
		assert.Contains(t, ids, toID, "user born on the to bound must be included")
	})

	t.Run("no matches returns empty slice, not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seed(t, repo)

		users, err := repo.FindByBirthDateRange(context.Background(),
			birthDate(1900, time.January, 1), birthDate(1900, time.December, 31))

		assert.NoError(t, err, "range query failed")
		assert.Empty(t, users, "expected no users in range")
	})
}
