package service

import (
	"errors"
	"strings"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// CatalogService owns the admin-managed catalog: dresses and makeup services.
// The public surface reads through it with filters; all writes are admin-only
// and enforced at the route layer.
type CatalogService struct {
	dressRepo  *repository.DressRepository
	makeupRepo *repository.MakeupRepository
}

func NewCatalogService(dressRepo *repository.DressRepository, makeupRepo *repository.MakeupRepository) *CatalogService {
	return &CatalogService{
		dressRepo:  dressRepo,
		makeupRepo: makeupRepo,
	}
}

type DressInput struct {
	Title       string
	Description string
	Category    models.DressCategory
	Price       *float64
	RentalPrice *float64
	Images      []string
	Sizes       []string
	Colors      []string
	Available   bool
	Featured    bool
}

func validateDressInput(input DressInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	if !input.Category.Valid() {
		return ErrInvalidCategory
	}
	if input.Price != nil && *input.Price < 0 {
		return ErrInvalidPrice
	}
	if input.RentalPrice != nil && *input.RentalPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *CatalogService) CreateDress(input DressInput) (*models.Dress, error) {
	if err := validateDressInput(input); err != nil {
		return nil, err
	}

	dress := &models.Dress{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		RentalPrice: input.RentalPrice,
		Images:      input.Images,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		Available:   input.Available,
		Featured:    input.Featured,
	}

	if err := s.dressRepo.CreateDress(dress); err != nil {
		logger.Log.Error("Failed to create dress", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Dress created",
		zap.String("dress_id", dress.ID.String()),
		zap.String("title", dress.Title),
	)

	return dress, nil
}

func (s *CatalogService) GetDress(id uuid.UUID) (*models.Dress, error) {
	dress, err := s.dressRepo.GetDressByID(id)
	if err != nil {
		return nil, err
	}
	if dress == nil {
		return nil, ErrDressNotFound
	}
	return dress, nil
}

func (s *CatalogService) ListDresses(filter repository.DressFilter) ([]models.Dress, error) {
	return s.dressRepo.ListDresses(filter)
}

func (s *CatalogService) UpdateDress(id uuid.UUID, input DressInput) (*models.Dress, error) {
	if err := validateDressInput(input); err != nil {
		return nil, err
	}

	dress, err := s.dressRepo.GetDressByID(id)
	if err != nil {
		return nil, err
	}
	if dress == nil {
		return nil, ErrDressNotFound
	}

	dress.Title = strings.TrimSpace(input.Title)
	dress.Description = input.Description
	dress.Category = input.Category
	dress.Price = input.Price
	dress.RentalPrice = input.RentalPrice
	dress.Images = input.Images
	dress.Sizes = input.Sizes
	dress.Colors = input.Colors
	dress.Available = input.Available
	dress.Featured = input.Featured

	if err := s.dressRepo.UpdateDress(dress); err != nil {
		logger.Log.Error("Failed to update dress",
			zap.String("dress_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Dress updated", zap.String("dress_id", id.String()))

	return dress, nil
}

func (s *CatalogService) DeleteDress(id uuid.UUID) error {
	dress, err := s.dressRepo.GetDressByID(id)
	if err != nil {
		return err
	}
	if dress == nil {
		return ErrDressNotFound
	}

	if err := s.dressRepo.DeleteDress(id); err != nil {
		logger.Log.Error("Failed to delete dress",
			zap.String("dress_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Dress deleted", zap.String("dress_id", id.String()))
	return nil
}

type MakeupServiceInput struct {
	Title           string
	Description     string
	Category        models.MakeupCategory
	Price           float64
	DurationMinutes int
	ImageURL        string
	Available       bool
}

func validateMakeupServiceInput(input MakeupServiceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	if !input.Category.Valid() {
		return ErrInvalidCategory
	}
	if input.Price < 0 {
		return ErrInvalidPrice
	}
	if input.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *CatalogService) CreateMakeupService(input MakeupServiceInput) (*models.MakeupService, error) {
	if err := validateMakeupServiceInput(input); err != nil {
		return nil, err
	}

	makeupService := &models.MakeupService{
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Category:        input.Category,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		ImageURL:        input.ImageURL,
		Available:       input.Available,
	}

	if err := s.makeupRepo.CreateService(makeupService); err != nil {
		logger.Log.Error("Failed to create makeup service", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Makeup service created",
		zap.String("service_id", makeupService.ID.String()),
		zap.String("title", makeupService.Title),
	)

	return makeupService, nil
}

func (s *CatalogService) ListMakeupServices(filter repository.MakeupServiceFilter) ([]models.MakeupService, error) {
	return s.makeupRepo.ListServices(filter)
}

func (s *CatalogService) UpdateMakeupService(id uuid.UUID, input MakeupServiceInput) (*models.MakeupService, error) {
	if err := validateMakeupServiceInput(input); err != nil {
		return nil, err
	}

	makeupService, err := s.makeupRepo.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	if makeupService == nil {
		return nil, ErrServiceNotFound
	}

	makeupService.Title = strings.TrimSpace(input.Title)
	makeupService.Description = input.Description
	makeupService.Category = input.Category
	makeupService.Price = input.Price
	makeupService.DurationMinutes = input.DurationMinutes
	makeupService.ImageURL = input.ImageURL
	makeupService.Available = input.Available

	if err := s.makeupRepo.UpdateService(makeupService); err != nil {
		logger.Log.Error("Failed to update makeup service",
			zap.String("service_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Makeup service updated", zap.String("service_id", id.String()))

	return makeupService, nil
}

func (s *CatalogService) DeleteMakeupService(id uuid.UUID) error {
	makeupService, err := s.makeupRepo.GetServiceByID(id)
	if err != nil {
		return err
	}
	if makeupService == nil {
		return ErrServiceNotFound
	}

	if err := s.makeupRepo.DeleteService(id); err != nil {
		logger.Log.Error("Failed to delete makeup service",
			zap.String("service_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Makeup service deleted", zap.String("service_id", id.String()))
	return nil
}
