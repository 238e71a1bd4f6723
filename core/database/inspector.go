package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// SchemaIssue describes a table or column that a model expects but the database lacks.
type SchemaIssue struct {
	Table  string `json:"table"`
	Column string `json:"column,omitempty"`
}

func (i SchemaIssue) String() string {
	if i.Column == "" {
		return "missing table " + i.Table
	}
	return "missing column " + i.Table + "." + i.Column
}

// CheckSchema compares the live schema with what gorm derives from the models.
func CheckSchema(db *gorm.DB, models ...any) ([]SchemaIssue, error) {
	var issues []SchemaIssue
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(table) {
			issues = append(issues, SchemaIssue{Table: table})
			continue
		}

		columns, err := GetTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		present := make(map[string]struct{}, len(columns))
		for _, col := range columns {
			present[col.Field] = struct{}{}
		}
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			if _, ok := present[strings.ToLower(field.DBName)]; !ok {
				issues = append(issues, SchemaIssue{Table: table, Column: field.DBName})
			}
		}
	}
	return issues, nil
}
