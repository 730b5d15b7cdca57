package template

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dictforge/dictforge/internal/dict"
)

func mockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newSQLiteStoreWithDB(db), mock
}

func TestSQLiteStore_Get(t *testing.T) {
	store, mock := mockStore(t)

	tpl := &Template{Name: "US_State", Type: dict.Nominal}
	body, err := yaml.Marshal(tpl)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM templates WHERE name = ?`)).
		WithArgs("US_State").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(string(body)))

	got, err := store.Get("US_State")
	require.NoError(t, err)
	assert.Equal(t, "US_State", got.Name)
	assert.Equal(t, dict.Nominal, got.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM templates WHERE name = ?`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err := store.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Put(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec("INSERT INTO templates").
		WithArgs("US_State", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Put("US_State", &Template{Name: "US_State", Type: dict.Nominal})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_List(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name FROM templates ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("alpha").AddRow("beta"))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Delete(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM templates WHERE name = ?`)).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM templates WHERE name = ?`)).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete("gone"))
	assert.True(t, errors.Is(store.Delete("gone"), ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
