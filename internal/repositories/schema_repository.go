package repositories

import (
	"context"

	"gorm.io/gorm"

	"sqlpractice/internal/models"
)

type SchemaRepository struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

type tableInfoRow struct {
	Name string `gorm:"column:name"`
	Type string `gorm:"column:type"`
	PK   int    `gorm:"column:pk"`
}

// GetColumns returns the columns of table in declaration order.
func (r *SchemaRepository) GetColumns(ctx context.Context, table string) ([]models.ColumnInfo, error) {
	var rows []tableInfoRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT name, type, pk FROM pragma_table_info(?) ORDER BY cid`, table).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	columns := make([]models.ColumnInfo, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, models.ColumnInfo{
			Name:       row.Name,
			Type:       row.Type,
			PrimaryKey: row.PK > 0,
		})
	}
	return columns, nil
}

// GetForeignKeys returns the foreign keys declared on table
func (r *SchemaRepository) GetForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	var fks []models.ForeignKey
	err := r.db.WithContext(ctx).
		Raw(`SELECT "from" AS from_column, "table" AS to_table, "to" AS to_column
FROM pragma_foreign_key_list(?)
ORDER BY id, seq`, table).
		Scan(&fks).Error
	if err != nil {
		return nil, err
	}
	return fks, nil
}

// TableExists reports whether table is a table in the main schema.
func (r *SchemaRepository) TableExists(ctx context.Context, table string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).
		Scan(&count).Error
	return count > 0, err
}
