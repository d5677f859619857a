package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("name", "VARCHAR(64)", "YES", "", nil, "").
		AddRow("id", "INT(11)", "NO", "PRI", nil, "auto_increment")
	mock.ExpectQuery("SHOW COLUMNS FROM `people`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "people")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)

	assert.Equal(t, "name", columns[0].Field)
	assert.Equal(t, "varchar(64)", columns[0].Type)
	assert.False(t, columns[0].IsPrimary())
	assert.Equal(t, "id", columns[1].Field)
	assert.True(t, columns[1].IsPrimary())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"Simple", "people", false},
		{"Underscore", "_audit_2024", false},
		{"Backtick", "people`; DROP TABLE x", true},
		{"Quote", "people'", true},
		{"LeadingDigit", "1people", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetTableColumns_InvalidName(t *testing.T) {
	db, mock := setupMockDB(t)

	_, err := GetTableColumns(db, "people`")
	assert.ErrorContains(t, err, "invalid table name")
	assert.NoError(t, mock.ExpectationsWereMet())
}
