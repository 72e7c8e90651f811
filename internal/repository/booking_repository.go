package repository

import (
	"errors"

	"github.com/dresspalette/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(booking *models.DressBooking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) GetBookingByID(id uuid.UUID) (*models.DressBooking, error) {
	var booking models.DressBooking
	err := r.db.Preload("Dress").Preload("User").Where("id = ?", id).First(&booking).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// ListBookings returns every booking with dress and renter context, newest first.
func (r *BookingRepository) ListBookings() ([]models.DressBooking, error) {
	var bookings []models.DressBooking
	err := r.db.
		Preload("Dress").
		Preload("User").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListBookingsByUser(userID uuid.UUID, limit int) ([]models.DressBooking, error) {
	query := r.db.
		Preload("Dress").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var bookings []models.DressBooking
	err := query.Find(&bookings).Error
	return bookings, err
}

// RecentBookings returns the most recently created bookings for the overview.
func (r *BookingRepository) RecentBookings(limit int) ([]models.DressBooking, error) {
	var bookings []models.DressBooking
	err := r.db.
		Preload("Dress").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateBookingStatus(id uuid.UUID, status models.Status) error {
	return r.db.Model(&models.DressBooking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) CountBookings() (int64, error) {
	var count int64
	err := r.db.Model(&models.DressBooking{}).Count(&count).Error
	return count, err
}

func (r *BookingRepository) CountBookingsByStatus(status models.Status) (int64, error) {
	var count int64
	err := r.db.Model(&models.DressBooking{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
