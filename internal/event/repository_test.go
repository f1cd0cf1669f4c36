package event

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestGetAllJoinsOwnersAndOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`JOIN users ON users.id = events.admin_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "admin_id"}).
			AddRow("ev-2", "Newer", "admin-1").
			AddRow("ev-1", "Older", "admin-1"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow("admin-1", "Alice", "alice@example.com", "admin"))

	events, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-2", events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchBuildsFiltersWithAndSemantics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`events.event_type = .+ AND .*events\.location ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Search(SearchParams{EventType: "workshop", Location: "berlin"}.Normalize())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchFreeTextSpansTitleDescriptionVenueLocation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`events.title ILIKE .+ OR events.description ILIKE .+ OR events.venue ILIKE .+ OR events.location ILIKE`).
		WithArgs("%golang%", "%golang%", "%golang%", "%golang%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Search(SearchParams{Search: "golang"}.Normalize())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchDateWindowOnStartDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`events.start_date >= .+ AND events.start_date <`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Search(SearchParams{Date: "2026-10-01"}.Normalize())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompoundPredicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events" WHERE id = $1 AND admin_id = $2`)).
		WithArgs("ev-1", "admin-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.Delete("ev-1", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoMatchReturnsZeroRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WithArgs("ev-1", "someone-else").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.Delete("ev-1", "someone-else")
	require.NoError(t, err)
	assert.Zero(t, affected)
}
