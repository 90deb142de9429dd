package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Weryck-Lemos/ElectroStock/internal/cache"
	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"gorm.io/gorm"
)

// OrderItemService edits individual order lines. Lines are only mutable while
// the parent order is pending; every quantity change adjusts item stock by
// the difference inside one transaction.
type OrderItemService interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetAll() ([]models.OrderItem, error)
	UpdateQuantity(id uint, quantity int) (*models.OrderItem, error)
	Delete(id uint) error
}

type orderItemService struct {
	store repository.Store
	cache *cache.Client
}

func NewOrderItemService(store repository.Store, cacheClient *cache.Client) OrderItemService {
	return &orderItemService{store: store, cache: cacheClient}
}

func (s *orderItemService) GetByID(id uint) (*models.OrderItem, error) {
	orderItem, err := s.store.OrderItems().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderItemNotFound
		}
		return nil, err
	}
	return orderItem, nil
}

func (s *orderItemService) GetAll() ([]models.OrderItem, error) {
	return s.store.OrderItems().GetAll()
}

func (s *orderItemService) UpdateQuantity(id uint, quantity int) (*models.OrderItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var orderItem *models.OrderItem
	err := s.store.Atomic(func(tx repository.Store) error {
		var err error
		orderItem, err = lockLine(tx, id)
		if err != nil {
			return err
		}

		item, err := tx.Items().GetByIDForUpdate(orderItem.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		diff := quantity - orderItem.Quantity
		if diff > 0 {
			if diff > item.Stock {
				return fmt.Errorf("%w for %q", ErrInsufficientStock, item.Name)
			}
			item.Stock -= diff
		} else if diff < 0 {
			item.Stock += -diff
		}
		if err := tx.Items().Update(item); err != nil {
			return err
		}

		orderItem.Quantity = quantity
		return tx.OrderItems().Update(orderItem)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateItems()
	return orderItem, nil
}

func (s *orderItemService) Delete(id uint) error {
	err := s.store.Atomic(func(tx repository.Store) error {
		orderItem, err := lockLine(tx, id)
		if err != nil {
			return err
		}

		item, err := tx.Items().GetByIDForUpdate(orderItem.ItemID)
		if err == nil {
			item.Stock += orderItem.Quantity
			if err := tx.Items().Update(item); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.OrderItems().Delete(orderItem.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateItems()
	return nil
}

// lockLine loads the order line and locks its parent order, failing unless
// the parent is still pending.
func lockLine(tx repository.Store, id uint) (*models.OrderItem, error) {
	orderItem, err := tx.OrderItems().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderItemNotFound
		}
		return nil, err
	}

	order, err := tx.Orders().GetByIDForUpdate(orderItem.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status != string(models.OrderPending) {
		return nil, fmt.Errorf("%w: lines are only editable while the order is pending", ErrOrderNotPending)
	}
	return orderItem, nil
}

func (s *orderItemService) invalidateItems() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItems(); err != nil {
		log.Printf("Warning: item cache invalidation failed: %v", err)
	}
}
