package models

import (
	"fmt"

	"gorm.io/gorm"
)

// NameKeyCollation is the MySQL collation of countries.name_key. NameKey
// already folds case; the column must compare the keys byte for byte so
// accented and unaccented names stay distinct.
const NameKeyCollation = "utf8mb4_bin"

// Migrate creates or updates every table and pins the name key collation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return PinNameKeyCollation(db)
}

// PinNameKeyCollation switches countries.name_key to NameKeyCollation on
// MySQL when it uses another collation. Other dialects compare bytes already.
func PinNameKeyCollation(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		return nil
	}

	var current string
	err := db.Raw(`SELECT COLLATION_NAME FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND COLUMN_NAME = ?`,
		Country{}.TableName(), "name_key").Scan(&current).Error
	if err != nil {
		return fmt.Errorf("failed to read name_key collation: %w", err)
	}
	if current == NameKeyCollation {
		return nil
	}

	err = db.Exec(fmt.Sprintf("ALTER TABLE `%s` MODIFY `name_key` varchar(255) NOT NULL COLLATE %s",
		Country{}.TableName(), NameKeyCollation)).Error
	if err != nil {
		return fmt.Errorf("failed to set name_key collation: %w", err)
	}
	return nil
}
