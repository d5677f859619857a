package database

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// PrimaryKeyFlag is the Key value SHOW COLUMNS reports for primary key columns.
const PrimaryKeyFlag = "PRI"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ColumnInfo matches the output of SHOW COLUMNS
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// IsPrimary reports whether the column is part of the primary key.
func (c ColumnInfo) IsPrimary() bool {
	return c.Key == PrimaryKeyFlag
}

// ValidateTableName rejects names that cannot be safely interpolated into SQL.
func ValidateTableName(tableName string) error {
	if !tableNamePattern.MatchString(tableName) {
		return fmt.Errorf("invalid table name %q", tableName)
	}
	return nil
}

// GetTableColumns retrieves the column definitions for a given table, in table order.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if err := ValidateTableName(tableName); err != nil {
		return nil, err
	}

	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		type SQLiteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []SQLiteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			info := ColumnInfo{
				Field: col.Name,
				Type:  strings.ToLower(col.Type),
			}
			if col.Pk > 0 {
				info.Key = PrimaryKeyFlag
			}
			columns = append(columns, info)
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}
