package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"sqlpractice/internal/database"
)

type DatabaseService struct {
	db *gorm.DB
	mu *sync.RWMutex
}

func NewDatabaseService(db *gorm.DB, mu *sync.RWMutex) *DatabaseService {
	return &DatabaseService{db: db, mu: mu}
}

// Reset restores the practice tables to their seed state. Running queries
// finish first and new ones wait until the reset is done.
func (s *DatabaseService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return database.Reset(ctx, s.db)
}
