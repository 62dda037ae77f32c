package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestBankRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBankRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "banks" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), dto.BankCreate{ID: uuid.New(), Name: "BNP Paribas"})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "banks" (.+) VALUES (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err = repo.Create(context.Background(), dto.BankCreate{ID: uuid.New(), Name: "BNP Paribas"})
	assert.ErrorIs(t, err, domain.ErrBankExists)
}

func TestBankRepository_Get_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBankRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "banks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBankRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBankRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "banks" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "created_at", "updated_at"}).
			AddRow(uuid.New(), "BNP Paribas", nil, now, now).
			AddRow(uuid.New(), "Société Générale", "SG", now, now))

	banks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "BNP Paribas", banks[0].Name)
	assert.Nil(t, banks[0].Code)
	assert.Equal(t, "SG", *banks[1].Code)
}

func TestBankRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBankRepository(db)

	t.Run("missing row reports not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "banks"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), domain.ErrNotFound)
	})

	t.Run("foreign key violation maps to conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "banks"`).
			WillReturnError(gorm.ErrForeignKeyViolated)
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), domain.ErrReferentialConflict)
	})
}

func TestBankRepository_HasAccounts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBankRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	has, err := repo.HasAccounts(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), dto.UserCreate{ID: uuid.New(), Email: "bob@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestUoW_Do(t *testing.T) {
	db, mock := setupMockDB(t)
	uow := NewUoW(db)

	t.Run("commits on success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestAccountRepository_Create_UnknownBank(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(gorm.ErrForeignKeyViolated)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), dto.AccountCreate{
		ID:     uuid.New(),
		Name:   "Compte courant",
		Type:   domain.AccountTypeCurrent,
		UserID: uuid.New(),
		BankID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db)

	t.Run("deletes the owned row", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), uuid.New(), uuid.New()))
	})

	t.Run("missing or foreign row reports not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New(), uuid.New()), domain.ErrNotFound)
	})
}

// The delete semantics live in the generated foreign keys: balances go with
// their account, accounts go with their user, and a bank with dependent
// accounts cannot be removed.
func TestModelDeleteConstraints(t *testing.T) {
	t.Parallel()

	parse := func(model any) *schema.Schema {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		return s
	}
	onDelete := func(s *schema.Schema, relation string) string {
		rel, ok := s.Relationships.Relations[relation]
		require.True(t, ok, "relation %s not found on %s", relation, s.Name)
		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, "relation %s on %s carries no constraint", relation, s.Name)
		return constraint.OnDelete
	}

	account := parse(&Account{})
	assert.Equal(t, "RESTRICT", onDelete(account, "Bank"))
	assert.Equal(t, "CASCADE", onDelete(account, "Balances"))

	user := parse(&User{})
	assert.Equal(t, "CASCADE", onDelete(user, "Accounts"))
}
