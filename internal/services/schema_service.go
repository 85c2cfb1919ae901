package services

import (
	"context"
	"fmt"
	"sync"

	"sqlpractice/internal/models"
	"sqlpractice/internal/repositories"
)

type SchemaService struct {
	schemaRepo *repositories.SchemaRepository
	mu         *sync.RWMutex
	tables     []string
}

// NewSchemaService creates a SchemaService describing tables in the given
// order.
func NewSchemaService(schemaRepo *repositories.SchemaRepository, mu *sync.RWMutex, tables []string) *SchemaService {
	return &SchemaService{
		schemaRepo: schemaRepo,
		mu:         mu,
		tables:     tables,
	}
}

// Summary returns the columns and foreign keys of every practice table. A
// table missing from the file is reported with no columns.
func (s *SchemaService) Summary(ctx context.Context) ([]models.TableInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := make([]models.TableInfo, 0, len(s.tables))
	for _, table := range s.tables {
		info := models.TableInfo{Name: table, Columns: []models.ColumnInfo{}}

		exists, err := s.schemaRepo.TableExists(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", table, err)
		}
		if !exists {
			summary = append(summary, info)
			continue
		}

		columns, err := s.schemaRepo.GetColumns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for %s: %w", table, err)
		}
		info.Columns = columns

		fks, err := s.schemaRepo.GetForeignKeys(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to get foreign keys for %s: %w", table, err)
		}
		info.ForeignKeys = fks

		summary = append(summary, info)
	}

	return summary, nil
}
