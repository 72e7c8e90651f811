package service

import (
	"errors"
	"time"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDressNotFound       = errors.New("dress not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidTime         = errors.New("invalid time")
	ErrDateRange           = errors.New("start date must not be after end date")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// BookingService owns the lifecycle of dress bookings and makeup appointments:
// creation always starts at pending, and only the explicit transition table
// moves a record forward. Overlapping bookings for the same dress are accepted;
// the studio resolves conflicts manually.
type BookingService struct {
	bookingRepo *repository.BookingRepository
	dressRepo   *repository.DressRepository
	makeupRepo  *repository.MakeupRepository
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	dressRepo *repository.DressRepository,
	makeupRepo *repository.MakeupRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		dressRepo:   dressRepo,
		makeupRepo:  makeupRepo,
	}
}

type CreateBookingInput struct {
	DressID     uuid.UUID
	StartDate   string
	EndDate     string
	Notes       string
	TotalAmount *float64
}

func (s *BookingService) CreateBooking(userID uuid.UUID, input CreateBookingInput) (*models.DressBooking, error) {
	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if start.After(end) {
		return nil, ErrDateRange
	}

	dress, err := s.dressRepo.GetDressByID(input.DressID)
	if err != nil {
		logger.Log.Error("Failed to load dress for booking",
			zap.String("dress_id", input.DressID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if dress == nil {
		return nil, ErrDressNotFound
	}

	booking := &models.DressBooking{
		UserID:      userID,
		DressID:     input.DressID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.StatusPending,
		Notes:       input.Notes,
		TotalAmount: input.TotalAmount,
	}

	if err := s.bookingRepo.CreateBooking(booking); err != nil {
		logger.Log.Error("Failed to create booking",
			zap.String("user_id", userID.String()),
			zap.String("dress_id", input.DressID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("dress_id", input.DressID.String()),
		zap.String("start_date", input.StartDate),
		zap.String("end_date", input.EndDate),
	)

	return booking, nil
}

func (s *BookingService) ListBookingsForUser(userID uuid.UUID) ([]models.DressBooking, error) {
	return s.bookingRepo.ListBookingsByUser(userID, 0)
}

func (s *BookingService) ListAllBookings() ([]models.DressBooking, error) {
	return s.bookingRepo.ListBookings()
}

// UpdateBookingStatus applies an admin transition. Terminal statuses never
// move again; everything else follows the transition table.
func (s *BookingService) UpdateBookingStatus(id uuid.UUID, next models.Status, adminID uuid.UUID) (*models.DressBooking, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		logger.Log.Error("Failed to load booking",
			zap.String("booking_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if !booking.Status.CanTransitionTo(next) {
		logger.Log.Warn("Rejected booking status transition",
			zap.String("booking_id", id.String()),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(next)),
		)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateBookingStatus(id, next); err != nil {
		logger.Log.Error("Failed to update booking status",
			zap.String("booking_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
		zap.String("admin_id", adminID.String()),
	)

	booking.Status = next
	return booking, nil
}

type CreateAppointmentInput struct {
	ServiceID       uuid.UUID
	AppointmentDate string
	AppointmentTime string
	Notes           string
}

func (s *BookingService) CreateAppointment(userID uuid.UUID, input CreateAppointmentInput) (*models.MakeupAppointment, error) {
	if _, err := time.Parse(dateLayout, input.AppointmentDate); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, input.AppointmentTime); err != nil {
		return nil, ErrInvalidTime
	}

	makeupService, err := s.makeupRepo.GetServiceByID(input.ServiceID)
	if err != nil {
		logger.Log.Error("Failed to load service for appointment",
			zap.String("service_id", input.ServiceID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if makeupService == nil {
		return nil, ErrServiceNotFound
	}

	appointment := &models.MakeupAppointment{
		UserID:          userID,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Status:          models.StatusPending,
		Notes:           input.Notes,
	}

	if err := s.makeupRepo.CreateAppointment(appointment); err != nil {
		logger.Log.Error("Failed to create appointment",
			zap.String("user_id", userID.String()),
			zap.String("service_id", input.ServiceID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Appointment created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("service_id", input.ServiceID.String()),
		zap.String("date", input.AppointmentDate),
		zap.String("time", input.AppointmentTime),
	)

	return appointment, nil
}

func (s *BookingService) ListAppointmentsForUser(userID uuid.UUID) ([]models.MakeupAppointment, error) {
	return s.makeupRepo.ListAppointmentsByUser(userID, 0)
}

func (s *BookingService) ListAllAppointments() ([]models.MakeupAppointment, error) {
	return s.makeupRepo.ListAppointments()
}

func (s *BookingService) UpdateAppointmentStatus(id uuid.UUID, next models.Status, adminID uuid.UUID) (*models.MakeupAppointment, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.makeupRepo.GetAppointmentByID(id)
	if err != nil {
		logger.Log.Error("Failed to load appointment",
			zap.String("appointment_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(next) {
		logger.Log.Warn("Rejected appointment status transition",
			zap.String("appointment_id", id.String()),
			zap.String("from", string(appointment.Status)),
			zap.String("to", string(next)),
		)
		return nil, ErrInvalidTransition
	}

	if err := s.makeupRepo.UpdateAppointmentStatus(id, next); err != nil {
		logger.Log.Error("Failed to update appointment status",
			zap.String("appointment_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Appointment status updated",
		zap.String("appointment_id", id.String()),
		zap.String("from", string(appointment.Status)),
		zap.String("to", string(next)),
		zap.String("admin_id", adminID.String()),
	)

	appointment.Status = next
	return appointment, nil
}
