package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"wordbook/domain"
	"wordbook/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestCreateUser(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	gormDB, mock := newMockDB(t)
	authRepo := NewAuthRepository(gormDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users" ("name","email","password") VALUES ($1,$2,$3) RETURNING "uuid"`)).
			WithArgs("A", "a@x.com", "hashed-password").
			WillReturnRows(sqlmock.NewRows([]string{"uuid"}).AddRow("user-123"))
		mock.ExpectCommit()

		userID, err := authRepo.CreateUser(ctx, &domain.User{
			Name:     "A",
			Email:    "a@x.com",
			Password: "hashed-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("Insert Failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		userID, err := authRepo.CreateUser(ctx, &domain.User{
			Name:     "A",
			Email:    "a@x.com",
			Password: "hashed-password",
		})

		assert.Error(t, err)
		assert.Empty(t, userID)
	})
}

func TestGetUserByEmail(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	gormDB, mock := newMockDB(t)
	authRepo := NewAuthRepository(gormDB)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"uuid", "name", "email", "password"}).
			AddRow("user-123", "A", "a@x.com", "hashed-password")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."uuid" LIMIT $2`)).
			WithArgs("a@x.com", 1).
			WillReturnRows(rows)

		user, err := authRepo.GetUserByEmail(ctx, "a@x.com")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.UUID)
		assert.Equal(t, "hashed-password", user.Password)
	})

	t.Run("Not Found Returns Nil Without Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WithArgs("missing@x.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := authRepo.GetUserByEmail(ctx, "missing@x.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DB Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WithArgs("a@x.com", 1).
			WillReturnError(errors.New("database error"))

		user, err := authRepo.GetUserByEmail(ctx, "a@x.com")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestEmailExists(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	gormDB, mock := newMockDB(t)
	authRepo := NewAuthRepository(gormDB)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE email = $1`)).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := authRepo.EmailExists(ctx, "a@x.com")

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE email = $1`)).
			WithArgs("missing@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := authRepo.EmailExists(ctx, "missing@x.com")

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestListUsers(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	gormDB, mock := newMockDB(t)
	authRepo := NewAuthRepository(gormDB)
	ctx := context.Background()

	t.Run("Derives Words From Creator Column", func(t *testing.T) {
		userRows := sqlmock.NewRows([]string{"uuid", "name", "email", "password"}).
			AddRow("user-1", "A", "a@x.com", "hash-a").
			AddRow("user-2", "B", "b@x.com", "hash-b")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(userRows)

		wordRows := sqlmock.NewRows([]string{"uuid", "word", "translate", "creator_id"}).
			AddRow("word-1", "casa", "house", "user-1").
			AddRow("word-2", "perro", "dog", "user-1")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "words" ORDER BY created_at`)).
			WillReturnRows(wordRows)

		users, err := authRepo.ListUsers(ctx)

		assert.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, []string{"word-1", "word-2"}, users[0].Words)
		assert.Equal(t, []string{}, users[1].Words)
	})

	t.Run("DB Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnError(errors.New("database error"))

		users, err := authRepo.ListUsers(ctx)

		assert.Error(t, err)
		assert.Nil(t, users)
	})
}
