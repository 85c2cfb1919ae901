package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sqlpractice/internal/catalog"
	"sqlpractice/internal/database"
	"sqlpractice/internal/repositories"
)

type testEnv struct {
	db       *gorm.DB
	mu       *sync.RWMutex
	query    *QueryService
	schema   *SchemaService
	database *DatabaseService
}

func newTestEnv(t *testing.T, timeout time.Duration, maxRows int) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "learn_sql.db")
	db, _, err := database.EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	ro, err := database.OpenReadOnly(path, 2)
	require.NoError(t, err)
	t.Cleanup(func() { ro.Close() })

	mu := &sync.RWMutex{}
	return &testEnv{
		db:       db,
		mu:       mu,
		query:    NewQueryService(repositories.NewQueryRepository(ro), mu, timeout, maxRows),
		schema:   NewSchemaService(repositories.NewSchemaRepository(db), mu, database.PracticeTables),
		database: NewDatabaseService(db, mu),
	}
}

func TestValidateSQLQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{name: "plain select", query: "SELECT * FROM users", want: "SELECT * FROM users"},
		{name: "lower case", query: "select name from users", want: "select name from users"},
		{name: "trailing semicolons and space", query: "  SELECT 1;; \n", want: "SELECT 1"},
		{name: "leading comment", query: "-- all users\nSELECT * FROM users;", want: "-- all users\nSELECT * FROM users"},
		{name: "block comment", query: "/* hi */ SELECT 1", want: "/* hi */ SELECT 1"},
		{name: "semicolon in literal", query: "SELECT * FROM users WHERE name = 'a;b'", want: "SELECT * FROM users WHERE name = 'a;b'"},
		{name: "escaped quote", query: "SELECT 'it''s; fine'", want: "SELECT 'it''s; fine'"},
		{name: "trailing comment after semicolon", query: "SELECT 1; -- done", want: "SELECT 1"},
		{name: "empty", query: "", wantErr: ErrEmptyQuery},
		{name: "whitespace", query: " \n\t ", wantErr: ErrEmptyQuery},
		{name: "only semicolons", query: ";;", wantErr: ErrEmptyQuery},
		{name: "only comment", query: "-- nothing here", wantErr: ErrEmptyQuery},
		{name: "delete", query: "DELETE FROM users", wantErr: ErrNotSelect},
		{name: "drop", query: "drop table orders;", wantErr: ErrNotSelect},
		{name: "pragma", query: "PRAGMA table_info(users)", wantErr: ErrNotSelect},
		{name: "with clause", query: "WITH x AS (SELECT 1) SELECT * FROM x", wantErr: ErrNotSelect},
		{name: "stacked statements", query: "SELECT 1; DROP TABLE users", wantErr: ErrMultipleStatements},
		{name: "two selects", query: "SELECT 1; SELECT 2;", wantErr: ErrMultipleStatements},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSQLQuery(tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteQueryReturnsRows(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: "SELECT * FROM users WHERE city='Goa';"})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "email", "city"}, result.Columns)
	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, "Adarsh", result.Value(0, "name"))
	assert.Empty(t, result.Error)
	assert.False(t, result.Truncated)
	assert.NotEmpty(t, result.ExecutionID)
}

func TestExecuteQueryTotalPaid(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	q, ok := catalog.Lookup("Total PAID amount")
	require.True(t, ok)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: q})
	require.NoError(t, err)

	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, 4398.0, result.Value(0, "total_paid"))
}

func TestExecuteQueryEmptyResultHasNoNilRows(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: "SELECT * FROM users WHERE city = 'Atlantis'"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.RowCount)
	assert.NotNil(t, result.Rows)
	assert.Len(t, result.Columns, 4)
}

func TestExecuteQueryAllExamplesRun(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	for _, ex := range catalog.Examples() {
		t.Run(ex.Label, func(t *testing.T) {
			result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: ex.Query})
			require.NoError(t, err)
			assert.Positive(t, result.RowCount)
		})
	}
}

func TestExecuteQuerySurfacesEngineError(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: "SELECT * FROM customers"})
	require.Error(t, err)

	var qerr *QueryError
	require.True(t, errors.As(err, &qerr))
	assert.Contains(t, qerr.Error(), "no such table")
	assert.Equal(t, "SELECT * FROM customers", qerr.Query)

	require.NotNil(t, result)
	assert.Equal(t, qerr.Error(), result.Error)
	assert.Zero(t, result.RowCount)
}

func TestExecuteQueryRejectsWritesBeforeRunning(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 1000)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: "DELETE FROM orders"})
	assert.ErrorIs(t, err, ErrNotSelect)
	assert.Nil(t, result)

	var orders int64
	require.NoError(t, env.db.Table("orders").Count(&orders).Error)
	assert.EqualValues(t, len(database.SeedOrders), orders)
}

func TestExecuteQueryTruncatesAtMaxRows(t *testing.T) {
	env := newTestEnv(t, 5*time.Second, 3)

	result, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: "SELECT * FROM orders ORDER BY id"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowCount)
	assert.True(t, result.Truncated)
	assert.EqualValues(t, 1, result.Value(0, "id"))
}

func TestExecuteQueryTimeout(t *testing.T) {
	env := newTestEnv(t, 50*time.Millisecond, 1000)

	slow := `SELECT COUNT(*) FROM (
  WITH RECURSIVE c(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM c WHERE x < 500000000)
  SELECT x FROM c
)`
	_, err := env.query.ExecuteQuery(context.Background(), &ExecuteQueryRequest{Query: slow})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryTimeout)
}
