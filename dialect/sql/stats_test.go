package sql

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/filterql/dialect"
)

func TestStatsDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var slow []string
	// A negative threshold marks every statement slow, which keeps the
	// hook assertions deterministic.
	sdrv := NewStatsDriver(OpenDB(dialect.Postgres, db),
		WithSlowThreshold(-1),
		WithSlowQueryHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	rows := &Rows{}
	require.NoError(t, sdrv.Query(context.Background(), "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())

	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, sdrv.Exec(context.Background(), "INSERT INTO products DEFAULT VALUES", []any{}, nil))

	mock.ExpectQuery("SELECT boom").WillReturnError(errors.New("boom"))
	require.Error(t, sdrv.Query(context.Background(), "SELECT boom", []any{}, &Rows{}))

	snap := sdrv.QueryStats().Stats()
	assert.Equal(t, int64(2), snap.TotalQueries)
	assert.Equal(t, int64(1), snap.TotalExecs)
	assert.Equal(t, int64(1), snap.Errors)
	assert.Equal(t, int64(3), snap.SlowQueries)
	assert.Len(t, slow, 3)
	assert.Contains(t, snap.String(), "queries=2")
	assert.NotZero(t, snap.AvgQueryDuration())

	sdrv.QueryStats().Reset()
	assert.Equal(t, int64(0), sdrv.QueryStats().Stats().TotalQueries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsDriverThreshold(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdrv := NewStatsDriver(OpenDB(dialect.Postgres, db))
	assert.Equal(t, 100*time.Millisecond, sdrv.SlowThreshold())
	sdrv.SetSlowThreshold(time.Second)
	assert.Equal(t, time.Second, sdrv.SlowThreshold())
}

func TestStatsTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdrv := NewStatsDriver(OpenDB(dialect.Postgres, db), WithSlowThreshold(time.Minute))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	tx, err := sdrv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "UPDATE products SET stock = 0", []any{}, nil))
	rows := &Rows{}
	require.NoError(t, tx.Query(context.Background(), "SELECT id FROM products", []any{}, rows))
	require.NoError(t, tx.Commit())

	snap := sdrv.QueryStats().Stats()
	assert.Equal(t, int64(1), snap.TotalQueries)
	assert.Equal(t, int64(1), snap.TotalExecs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDebugDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var logs []string
	ddrv := NewDebugDriver(OpenDB(dialect.Postgres, db), DebugWithLog(func(_ context.Context, v ...any) {
		logs = append(logs, strings.TrimSpace(strings.Join(toStrings(v), " ")))
	}))

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	rows := &Rows{}
	require.NoError(t, ddrv.Query(context.Background(), "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	tx, err := ddrv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "DELETE FROM products", []any{}, nil))
	require.NoError(t, tx.Commit())

	require.Len(t, logs, 4)
	assert.Contains(t, logs[0], "query: SELECT 1")
	assert.Contains(t, logs[1], "begin transaction")
	assert.Contains(t, logs[2], "tx exec: DELETE FROM products")
	assert.Contains(t, logs[3], "commit transaction")
	require.NoError(t, mock.ExpectationsWereMet())
}

func toStrings(v []any) []string {
	out := make([]string, len(v))
	for i := range v {
		out[i], _ = v[i].(string)
	}
	return out
}
