package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_rates (id INTEGER PRIMARY KEY, code TEXT NOT NULL, rate DECIMAL(20,8))").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_rates")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Contains(t, colMap["id"].Type, "int")
	assert.Contains(t, colMap["code"].Type, "text")
	assert.Contains(t, colMap["rate"].Type, "decimal")

	cols, err := GetTableColumns(db, "non_existent")
	assert.ErrorContains(t, err, "does not exist")
	assert.Empty(t, cols)
}
