package service

import (
	"sync"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminOverview is the admin landing summary: per-entity totals, pending and
// unread counts, and the five most recent bookings and messages.
//
// FailedSections lists every component query that errored. A failed count is
// reported as failed instead of being coerced to zero, so a backend problem
// never masquerades as "no activity".
type AdminOverview struct {
	TotalDresses        int64 `json:"total_dresses"`
	TotalBookings       int64 `json:"total_bookings"`
	PendingBookings     int64 `json:"pending_bookings"`
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	TotalMembers        int64 `json:"total_members"`
	TotalMessages       int64 `json:"total_messages"`
	UnreadMessages      int64 `json:"unread_messages"`

	RecentBookings []models.DressBooking `json:"recent_bookings"`
	RecentMessages []models.Message      `json:"recent_messages"`

	FailedSections []string `json:"failed_sections,omitempty"`
}

// UserDashboard mirrors the member landing page: the profile plus a short
// tail of the member's own activity.
type UserDashboard struct {
	Profile            *models.User               `json:"profile"`
	RecentBookings     []models.DressBooking      `json:"recent_bookings"`
	RecentAppointments []models.MakeupAppointment `json:"recent_appointments"`
	RecentMessages     []models.Message           `json:"recent_messages"`
}

const recentWindow = 5

type DashboardService struct {
	userRepo    *repository.UserRepository
	dressRepo   *repository.DressRepository
	bookingRepo *repository.BookingRepository
	makeupRepo  *repository.MakeupRepository
	messageRepo *repository.MessageRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	dressRepo *repository.DressRepository,
	bookingRepo *repository.BookingRepository,
	makeupRepo *repository.MakeupRepository,
	messageRepo *repository.MessageRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		dressRepo:   dressRepo,
		bookingRepo: bookingRepo,
		makeupRepo:  makeupRepo,
		messageRepo: messageRepo,
	}
}

// AdminOverview fans the component queries out concurrently; they have no
// ordering dependency and a failure in one never blocks the rest. Every load
// re-runs all queries, nothing is cached.
func (s *DashboardService) AdminOverview() *AdminOverview {
	overview := &AdminOverview{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	section := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				logger.Log.Error("Overview query failed",
					zap.String("section", name),
					zap.Error(err),
				)
				mu.Lock()
				overview.FailedSections = append(overview.FailedSections, name)
				mu.Unlock()
			}
		}()
	}

	section("total_dresses", func() error {
		n, err := s.dressRepo.CountDresses()
		overview.TotalDresses = n
		return err
	})
	section("total_bookings", func() error {
		n, err := s.bookingRepo.CountBookings()
		overview.TotalBookings = n
		return err
	})
	section("pending_bookings", func() error {
		n, err := s.bookingRepo.CountBookingsByStatus(models.StatusPending)
		overview.PendingBookings = n
		return err
	})
	section("total_appointments", func() error {
		n, err := s.makeupRepo.CountAppointments()
		overview.TotalAppointments = n
		return err
	})
	section("pending_appointments", func() error {
		n, err := s.makeupRepo.CountAppointmentsByStatus(models.StatusPending)
		overview.PendingAppointments = n
		return err
	})
	section("total_members", func() error {
		n, err := s.userRepo.CountByRole(models.RoleUser)
		overview.TotalMembers = n
		return err
	})
	section("total_messages", func() error {
		n, err := s.messageRepo.CountMessages()
		overview.TotalMessages = n
		return err
	})
	section("unread_messages", func() error {
		n, err := s.messageRepo.CountUnread()
		overview.UnreadMessages = n
		return err
	})
	section("recent_bookings", func() error {
		bookings, err := s.bookingRepo.RecentBookings(recentWindow)
		overview.RecentBookings = bookings
		return err
	})
	section("recent_messages", func() error {
		messages, err := s.messageRepo.RecentMessages(recentWindow)
		overview.RecentMessages = messages
		return err
	})

	wg.Wait()
	return overview
}

// UserDashboard loads the member landing data: 3 most recent bookings and
// appointments, 5 most recent messages.
func (s *DashboardService) UserDashboard(userID uuid.UUID) (*UserDashboard, error) {
	profile, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	bookings, err := s.bookingRepo.ListBookingsByUser(userID, 3)
	if err != nil {
		return nil, err
	}
	appointments, err := s.makeupRepo.ListAppointmentsByUser(userID, 3)
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.ListMessagesByUser(userID, recentWindow)
	if err != nil {
		return nil, err
	}

	return &UserDashboard{
		Profile:            profile,
		RecentBookings:     bookings,
		RecentAppointments: appointments,
		RecentMessages:     messages,
	}, nil
}
