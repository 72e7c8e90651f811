package repository

import (
	"errors"

	"github.com/dresspalette/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DressFilter narrows the public catalog listing. Nil fields are ignored.
type DressFilter struct {
	Category  *models.DressCategory
	Available *bool
	Featured  *bool
}

type DressRepository struct {
	db *gorm.DB
}

func NewDressRepository(db *gorm.DB) *DressRepository {
	return &DressRepository{db: db}
}

func (r *DressRepository) CreateDress(dress *models.Dress) error {
	return r.db.Create(dress).Error
}

func (r *DressRepository) GetDressByID(id uuid.UUID) (*models.Dress, error) {
	var dress models.Dress
	err := r.db.Where("id = ?", id).First(&dress).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &dress, nil
}

func (r *DressRepository) ListDresses(filter DressFilter) ([]models.Dress, error) {
	query := r.db.Model(&models.Dress{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var dresses []models.Dress
	err := query.Order("created_at DESC").Find(&dresses).Error
	return dresses, err
}

func (r *DressRepository) UpdateDress(dress *models.Dress) error {
	return r.db.Save(dress).Error
}

func (r *DressRepository) DeleteDress(id uuid.UUID) error {
	return r.db.Delete(&models.Dress{}, "id = ?", id).Error
}

func (r *DressRepository) CountDresses() (int64, error) {
	var count int64
	err := r.db.Model(&models.Dress{}).Count(&count).Error
	return count, err
}
