package services

import (
	"errors"
	"log"

	"github.com/Weryck-Lemos/ElectroStock/internal/cache"
	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(name string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(id uint, name string) (*models.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	store repository.Store
	cache *cache.Client
}

// NewCategoryService builds the category service. cacheClient may be nil,
// in which case listings always hit the database.
func NewCategoryService(store repository.Store, cacheClient *cache.Client) CategoryService {
	return &categoryService{store: store, cache: cacheClient}
}

func (s *categoryService) Create(name string) (*models.Category, error) {
	if _, err := s.store.Categories().GetByName(name); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.store.Categories().Create(category); err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.store.Categories().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetAll() ([]models.Category, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCategories()
		if err != nil {
			log.Printf("Warning: category cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.store.Categories().GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCategories(categories); err != nil {
			log.Printf("Warning: category cache write failed: %v", err)
		}
	}
	return categories, nil
}

func (s *categoryService) Update(id uint, name string) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Categories().GetByName(name)
	if err == nil && existing.ID != category.ID {
		return nil, ErrCategoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = name
	if err := s.store.Categories().Update(category); err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	count, err := s.store.Items().CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasItems
	}

	if err := s.store.Categories().Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *categoryService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCategories(); err != nil {
		log.Printf("Warning: category cache invalidation failed: %v", err)
	}
}
