package prettytable_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/prettytable"
)

func TestFromSQL(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, score, created FROM players").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "score", "created"}).
			AddRow(1, "ann", 9.5, created).
			AddRow(2, nil, nil, nil))

	rows, err := db.Query("SELECT id, name, score, created FROM players")
	require.NoError(t, err)
	tbl, err := prettytable.FromSQL(rows)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{"id", "name", "score", "created"}, tbl.Columns())
	assert.Equal(t, [][]string{
		{"1", "ann", "9.5", "2024-03-01 12:30:00"},
		{"2", "", "", ""},
	}, tbl.Rows())

	v, err := tbl.Cell(0, "score")
	require.NoError(t, err)
	assert.Equal(t, prettytable.KindFloat, v.Kind())
	v, err = tbl.Cell(1, "name")
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestFromSQLRowError(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errBroken := errors.New("connection reset")
	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(1).
			AddRow(2).
			RowError(1, errBroken))

	rows, err := db.Query("SELECT id FROM t")
	require.NoError(t, err)
	_, err = prettytable.FromSQL(rows)
	require.ErrorIs(t, err, errBroken)
}
