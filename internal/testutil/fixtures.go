package testutil

import (
	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser creates a user with a hashed password, ready to insert.
func CreateTestUser(email, password, fullName string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     fullName,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default member account
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("test@example.com", "Test123456", "Test User", models.RoleUser)
}

// DefaultAdminUser returns a default admin account
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin@example.com", "Admin123456", "Studio Admin", models.RoleAdmin)
}

// CreateTestDress returns an available, non-featured dress.
func CreateTestDress(title string, category models.DressCategory) *models.Dress {
	rental := 80.0
	return &models.Dress{
		ID:          uuid.New(),
		Title:       title,
		Category:    category,
		RentalPrice: &rental,
		Sizes:       models.StringList{"S", "M"},
		Colors:      models.StringList{"black"},
		Available:   true,
	}
}

// CreateTestMakeupService returns an available makeup service.
func CreateTestMakeupService(title string, category models.MakeupCategory) *models.MakeupService {
	return &models.MakeupService{
		ID:              uuid.New(),
		Title:           title,
		Category:        category,
		Price:           75,
		DurationMinutes: 60,
		Available:       true,
	}
}

// CreateTestPost returns a post; PublishedAt is left nil even when published
// is true, matching a row created before the publish timestamp existed.
func CreateTestPost(title, slug string, published bool) *models.LifestylePost {
	return &models.LifestylePost{
		ID:        uuid.New(),
		Title:     title,
		Slug:      slug,
		Category:  models.PostLifestyle,
		Tags:      models.StringList{"studio"},
		Published: published,
	}
}

// CreateTestMessage returns an unread message with no reply.
func CreateTestMessage(userID uuid.UUID, subject, content string) *models.Message {
	return &models.Message{
		ID:      uuid.New(),
		UserID:  userID,
		Subject: subject,
		Content: content,
	}
}
