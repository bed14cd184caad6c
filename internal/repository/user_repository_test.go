package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at", "deleted_at"}
}

func TestGormUserRepository_FindByEmailUnscoped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	deletedAt := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "Ghost", "ghost@example.com", "hash", "USER", time.Now(), time.Now(), deletedAt))

	user, err := repo.FindByEmailUnscoped("ghost@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)

	// The unscoped lookup surfaces soft-deleted rows.
	require.True(t, user.DeletedAt.Valid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByID_FiltersDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\? AND `users`.`deleted_at` IS NULL").
		WithArgs("user-1", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByID("user-1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `deleted_at`=\\? WHERE id = \\?").
		WithArgs(sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SoftDelete("user-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
