package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/diewo77/invoice-hub/validation"
	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// List returns every client ordered by name.
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Order("name").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Create stores a validated client. A name that differs from an existing one
// only by case or surrounding spaces yields ErrDuplicateName.
func (s *ClientService) Create(ctx context.Context, in validation.Client) (*models.Client, error) {
	c := models.Client{Name: in.Name, Email: in.Email, Address: in.Address}
	db := s.db.WithContext(ctx)

	var existing models.Client
	err := db.Select("id").Where("name_key = ?", models.NameKey(in.Name)).First(&existing).Error
	switch {
	case err == nil:
		return nil, ErrDuplicateName
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("check client name: %w", err)
	}

	if err := db.Create(&c).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &c, nil
}
