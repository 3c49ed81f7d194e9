package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes a single column of an existing table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
	Primary  bool
}

// GetTableColumns retrieves the column definitions for a given table.
// Names and types are lower-cased so callers can compare them with GORM tags.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return nil, fmt.Errorf("table %s does not exist", tableName)
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		colType, ok := ct.ColumnType()
		if !ok || colType == "" {
			colType = ct.DatabaseTypeName()
		}
		nullable, _ := ct.Nullable()
		primary, _ := ct.PrimaryKey()

		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(ct.Name()),
			Type:     strings.ToLower(colType),
			Nullable: nullable,
			Primary:  primary,
		})
	}
	return columns, nil
}
