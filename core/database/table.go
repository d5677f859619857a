package database

import (
	"context"
	"fmt"
	"strings"

	"record-reconciler/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReadTable renders every row of a table as delimited text, one row per line.
//
// The primary key column is moved to the front so it becomes the record key,
// the remaining columns keep table order, and rows are ordered by the primary key.
// Tables without a primary key use their first column. NULL renders as an empty field.
// A value containing the delimiter or a line break fails the read.
func ReadTable(ctx context.Context, db *gorm.DB, tableName, delimiter string) (string, error) {
	db = db.WithContext(ctx)

	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("table %s has no columns", tableName)
	}

	names := orderColumns(columns)

	selectCols := make([]clause.Column, len(names))
	for i, name := range names {
		selectCols[i] = clause.Column{Name: name}
	}

	rows, err := db.Table(tableName).
		Clauses(clause.Select{Columns: selectCols}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: names[0]}}).
		Rows()
	if err != nil {
		return "", fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	var sb strings.Builder
	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}
	fields := make([]string, len(names))

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return "", fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}
		for i, v := range values {
			fields[i] = utils.ToString(v)
		}
		// A delimiter or line break inside a value would shift fields or split the row.
		for i, f := range fields {
			if strings.Contains(f, delimiter) || strings.ContainsAny(f, "\r\n") {
				return "", fmt.Errorf("table %s row %q column %s: value contains the delimiter or a line break", tableName, fields[0], names[i])
			}
		}
		sb.WriteString(strings.Join(fields, delimiter))
		sb.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to read table %s: %w", tableName, err)
	}

	return sb.String(), nil
}

// orderColumns returns column names with the first primary key column leading.
func orderColumns(columns []ColumnInfo) []string {
	pk := 0
	for i, col := range columns {
		if col.IsPrimary() {
			pk = i
			break
		}
	}

	names := make([]string, 0, len(columns))
	names = append(names, columns[pk].Field)
	for i, col := range columns {
		if i != pk {
			names = append(names, col.Field)
		}
	}
	return names
}
