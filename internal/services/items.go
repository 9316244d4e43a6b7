package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/diewo77/invoice-hub/validation"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// List returns the catalog ordered by name.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create stores a validated catalog item, rejecting case-insensitive
// duplicates with ErrDuplicateName.
func (s *ItemService) Create(ctx context.Context, in validation.Item) (*models.Item, error) {
	it := models.Item{Name: in.Name, UnitPrice: in.UnitPrice, GSTPercent: in.GSTPercent}
	db := s.db.WithContext(ctx)

	var existing models.Item
	err := db.Select("id").Where("name_key = ?", models.NameKey(in.Name)).First(&existing).Error
	switch {
	case err == nil:
		return nil, ErrDuplicateName
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("check item name: %w", err)
	}

	if err := db.Create(&it).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &it, nil
}
