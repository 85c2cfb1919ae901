package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlpractice/internal/models"
)

func newDatabasePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "learn_sql.db")
}

func TestEnsureDatabaseExistsCreatesAndSeeds(t *testing.T) {
	path := newDatabasePath(t)

	db, created, err := EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	defer Close(db)

	assert.True(t, created)
	_, err = os.Stat(path)
	require.NoError(t, err)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, len(SeedUsers), users)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, len(SeedOrders), orders)
}

func TestEnsureDatabaseExistsReusesExistingFile(t *testing.T) {
	path := newDatabasePath(t)

	db, created, err := EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	require.True(t, created)

	city := "Panaji"
	require.NoError(t, db.Create(&models.User{Name: "Neha", City: &city}).Error)
	require.NoError(t, db.Where("status = ?", "CANCELLED").Delete(&models.Order{}).Error)
	Close(db)

	db, created, err = EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	defer Close(db)

	assert.False(t, created)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, len(SeedUsers)+1, users)

	var cancelled int64
	require.NoError(t, db.Model(&models.Order{}).Where("status = ?", "CANCELLED").Count(&cancelled).Error)
	assert.Zero(t, cancelled)
}

func TestEnsureDatabaseExistsCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "learn_sql.db")

	db, created, err := EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	defer Close(db)

	assert.True(t, created)
}

func TestResetRestoresSeedData(t *testing.T) {
	db, _, err := EnsureDatabaseExists(context.Background(), newDatabasePath(t))
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, db.Exec("DELETE FROM orders").Error)
	require.NoError(t, db.Exec("UPDATE users SET city = 'Nowhere'").Error)

	require.NoError(t, Reset(context.Background(), db))

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, len(SeedOrders), orders)

	var goa int64
	require.NoError(t, db.Model(&models.User{}).Where("city = ?", "Goa").Count(&goa).Error)
	assert.EqualValues(t, 1, goa)
}

func TestSeedOrdersReferenceUsersByName(t *testing.T) {
	db, _, err := EnsureDatabaseExists(context.Background(), newDatabasePath(t))
	require.NoError(t, err)
	defer Close(db)

	type row struct {
		Name   string
		Amount float64
	}
	var rows []row
	err = db.Raw(`SELECT u.name AS name, o.amount AS amount
FROM orders o JOIN users u ON u.id = o.user_id
WHERE o.status = 'CANCELLED'`).Scan(&rows).Error
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Rahul", rows[0].Name)
	assert.Equal(t, 2500.0, rows[0].Amount)
}

func TestOpenReadOnlyRejectsWrites(t *testing.T) {
	path := newDatabasePath(t)
	db, _, err := EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	defer Close(db)

	ro, err := OpenReadOnly(path, 1)
	require.NoError(t, err)
	defer ro.Close()

	var n int
	require.NoError(t, ro.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	assert.Equal(t, len(SeedUsers), n)

	_, err = ro.Exec("DELETE FROM users")
	assert.Error(t, err)
}

func TestEnsureDatabaseExistsRemovesFileWhenSeedingFails(t *testing.T) {
	path := newDatabasePath(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, created, err := EnsureDatabaseExists(ctx, path)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.False(t, created)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "half-built database file should be removed")

	db, created, err = EnsureDatabaseExists(context.Background(), path)
	require.NoError(t, err)
	defer Close(db)
	assert.True(t, created)
}
