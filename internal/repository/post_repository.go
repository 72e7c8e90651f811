package repository

import (
	"errors"

	"github.com/dresspalette/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostFilter narrows the public blog listing. Nil fields are ignored;
// Tag matches posts whose tag list contains the value.
type PostFilter struct {
	Category *models.PostCategory
	Tag      *string
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreatePost(post *models.LifestylePost) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) GetPostByID(id uuid.UUID) (*models.LifestylePost, error) {
	var post models.LifestylePost
	err := r.db.Where("id = ?", id).First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *PostRepository) GetPostBySlug(slug string, publishedOnly bool) (*models.LifestylePost, error) {
	query := r.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var post models.LifestylePost
	err := query.First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

// ListPublishedPosts returns publicly visible posts, newest published first.
// Tags are stored as a JSON array so the tag filter uses a substring match
// on the quoted value.
func (r *PostRepository) ListPublishedPosts(filter PostFilter) ([]models.LifestylePost, error) {
	query := r.db.Where("published = ?", true)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Tag != nil {
		query = query.Where("tags LIKE ?", "%\""+*filter.Tag+"\"%")
	}

	var posts []models.LifestylePost
	err := query.Order("published_at DESC").Find(&posts).Error
	return posts, err
}

// ListAllPosts returns every post for the admin console, drafts included.
func (r *PostRepository) ListAllPosts() ([]models.LifestylePost, error) {
	var posts []models.LifestylePost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepository) UpdatePost(post *models.LifestylePost) error {
	return r.db.Save(post).Error
}

func (r *PostRepository) DeletePost(id uuid.UUID) error {
	return r.db.Delete(&models.LifestylePost{}, "id = ?", id).Error
}

func (r *PostRepository) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.LifestylePost{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
