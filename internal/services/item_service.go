package services

import (
	"errors"
	"log"

	"github.com/Weryck-Lemos/ElectroStock/internal/cache"
	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"gorm.io/gorm"
)

// ItemUpdate carries a partial item update; nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string
	Description *string
	Stock       *int
	CategoryID  *uint
}

type ItemService interface {
	Create(name, description string, stock int, categoryID uint) (*models.Item, error)
	GetByID(id uint) (*models.Item, error)
	GetAll() ([]models.Item, error)
	Update(id uint, update ItemUpdate) (*models.Item, error)
	Delete(id uint) error
}

type itemService struct {
	store repository.Store
	cache *cache.Client
}

// NewItemService builds the item service. cacheClient may be nil, in which
// case listings always hit the database.
func NewItemService(store repository.Store, cacheClient *cache.Client) ItemService {
	return &itemService{store: store, cache: cacheClient}
}

func (s *itemService) Create(name, description string, stock int, categoryID uint) (*models.Item, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if _, err := s.store.Categories().GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	item := &models.Item{
		Name:        name,
		Description: description,
		Stock:       stock,
		CategoryID:  categoryID,
	}
	if err := s.store.Items().Create(item); err != nil {
		return nil, err
	}
	s.invalidate()
	return item, nil
}

func (s *itemService) GetByID(id uint) (*models.Item, error) {
	item, err := s.store.Items().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetAll() ([]models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.GetItems()
		if err != nil {
			log.Printf("Warning: item cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	items, err := s.store.Items().GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetItems(items); err != nil {
			log.Printf("Warning: item cache write failed: %v", err)
		}
	}
	return items, nil
}

func (s *itemService) Update(id uint, update ItemUpdate) (*models.Item, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.CategoryID != nil {
		if _, err := s.store.Categories().GetByID(*update.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		item.CategoryID = *update.CategoryID
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Stock != nil {
		if *update.Stock < 0 {
			return nil, ErrInvalidStock
		}
		item.Stock = *update.Stock
	}

	if err := s.store.Items().Update(item); err != nil {
		return nil, err
	}
	s.invalidate()
	return item, nil
}

func (s *itemService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	// Items that ever appeared in an order stay for historical integrity.
	count, err := s.store.OrderItems().CountByItem(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrItemReferenced
	}

	if err := s.store.Items().Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *itemService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItems(); err != nil {
		log.Printf("Warning: item cache invalidation failed: %v", err)
	}
}
