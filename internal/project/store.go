package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SortOrder selects the ordering of project listings
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByName   SortOrder = "name"
	SortByStatus SortOrder = "status"
)

var orderClauses = map[SortOrder]string{
	SortByDate:   "created_at DESC, id",
	SortByName:   "title ASC, created_at DESC",
	SortByStatus: "status ASC, created_at DESC",
}

// Store handles database operations for projects
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the projects table
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Project{}); err != nil {
		return fmt.Errorf("failed to migrate projects: %w", err)
	}
	return nil
}

func (s *Store) Create(ctx context.Context, p *Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns one page in the given order and the total number of projects
func (s *Store) List(ctx context.Context, order SortOrder, offset, limit int) ([]Project, int64, error) {
	clause, ok := orderClauses[order]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidSort, order)
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	projects := []Project{}
	if err := s.db.WithContext(ctx).Order(clause).Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Delete removes a project; deleting an unknown ID reports ErrProjectNotFound
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
