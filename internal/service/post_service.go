package service

import (
	"errors"
	"strings"
	"time"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/internal/utils"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrSlugAlreadyExists = errors.New("slug already exists")
)

// PostService manages the lifestyle blog. Posts are admin-owned; the public
// listing only ever sees published ones. Publishing stamps published_at,
// unpublishing clears it.
type PostService struct {
	postRepo *repository.PostRepository
}

func NewPostService(postRepo *repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

type PostInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage string
	Category   models.PostCategory
	Tags       []string
	Published  bool
}

func (s *PostService) CreatePost(input PostInput) (*models.LifestylePost, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}

	exists, err := s.postRepo.SlugExists(slug, uuid.Nil)
	if err != nil {
		logger.Log.Error("Failed to check slug", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	post := &models.LifestylePost{
		Title:      strings.TrimSpace(input.Title),
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Category:   input.Category,
		Tags:       input.Tags,
		Published:  input.Published,
	}
	if input.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.CreatePost(post); err != nil {
		logger.Log.Error("Failed to create post", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("slug", slug),
		zap.Bool("published", post.Published),
	)

	return post, nil
}

func (s *PostService) GetPublishedPost(slug string) (*models.LifestylePost, error) {
	post, err := s.postRepo.GetPostBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) ListPublishedPosts(filter repository.PostFilter) ([]models.LifestylePost, error) {
	return s.postRepo.ListPublishedPosts(filter)
}

func (s *PostService) ListAllPosts() ([]models.LifestylePost, error) {
	return s.postRepo.ListAllPosts()
}

func (s *PostService) UpdatePost(id uuid.UUID, input PostInput) (*models.LifestylePost, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if slug != post.Slug {
		exists, err := s.postRepo.SlugExists(slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugAlreadyExists
		}
	}

	// Keep the original publish timestamp while the post stays published.
	if input.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	} else if !input.Published {
		post.PublishedAt = nil
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Slug = slug
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.CoverImage = input.CoverImage
	post.Category = input.Category
	post.Tags = input.Tags
	post.Published = input.Published

	if err := s.postRepo.UpdatePost(post); err != nil {
		logger.Log.Error("Failed to update post",
			zap.String("post_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Post updated",
		zap.String("post_id", id.String()),
		zap.Bool("published", post.Published),
	)

	return post, nil
}

func (s *PostService) DeletePost(id uuid.UUID) error {
	post, err := s.postRepo.GetPostByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.postRepo.DeletePost(id); err != nil {
		logger.Log.Error("Failed to delete post",
			zap.String("post_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Post deleted", zap.String("post_id", id.String()))
	return nil
}
