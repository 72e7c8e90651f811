package repository

import (
	"errors"

	"github.com/dresspalette/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MakeupServiceFilter narrows the public services listing. Nil fields are ignored.
type MakeupServiceFilter struct {
	Category  *models.MakeupCategory
	Available *bool
}

type MakeupRepository struct {
	db *gorm.DB
}

func NewMakeupRepository(db *gorm.DB) *MakeupRepository {
	return &MakeupRepository{db: db}
}

func (r *MakeupRepository) CreateService(service *models.MakeupService) error {
	return r.db.Create(service).Error
}

func (r *MakeupRepository) GetServiceByID(id uuid.UUID) (*models.MakeupService, error) {
	var service models.MakeupService
	err := r.db.Where("id = ?", id).First(&service).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &service, nil
}

// ListServices orders available services before unavailable ones, then by price.
func (r *MakeupRepository) ListServices(filter MakeupServiceFilter) ([]models.MakeupService, error) {
	query := r.db.Model(&models.MakeupService{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var services []models.MakeupService
	err := query.Order("available DESC").Order("price ASC").Find(&services).Error
	return services, err
}

func (r *MakeupRepository) UpdateService(service *models.MakeupService) error {
	return r.db.Save(service).Error
}

func (r *MakeupRepository) DeleteService(id uuid.UUID) error {
	return r.db.Delete(&models.MakeupService{}, "id = ?", id).Error
}

func (r *MakeupRepository) CreateAppointment(appointment *models.MakeupAppointment) error {
	return r.db.Create(appointment).Error
}

func (r *MakeupRepository) GetAppointmentByID(id uuid.UUID) (*models.MakeupAppointment, error) {
	var appointment models.MakeupAppointment
	err := r.db.Preload("Service").Preload("User").Where("id = ?", id).First(&appointment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &appointment, nil
}

func (r *MakeupRepository) ListAppointments() ([]models.MakeupAppointment, error) {
	var appointments []models.MakeupAppointment
	err := r.db.
		Preload("Service").
		Preload("User").
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *MakeupRepository) ListAppointmentsByUser(userID uuid.UUID, limit int) ([]models.MakeupAppointment, error) {
	query := r.db.
		Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []models.MakeupAppointment
	err := query.Find(&appointments).Error
	return appointments, err
}

func (r *MakeupRepository) UpdateAppointmentStatus(id uuid.UUID, status models.Status) error {
	return r.db.Model(&models.MakeupAppointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *MakeupRepository) CountAppointments() (int64, error) {
	var count int64
	err := r.db.Model(&models.MakeupAppointment{}).Count(&count).Error
	return count, err
}

func (r *MakeupRepository) CountAppointmentsByStatus(status models.Status) (int64, error) {
	var count int64
	err := r.db.Model(&models.MakeupAppointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
