package services

import (
	"testing"

	"github.com/Weryck-Lemos/ElectroStock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, store *fakeStore) *models.Category {
	t.Helper()
	category := &models.Category{Name: "Componentes"}
	require.NoError(t, store.Categories().Create(category))
	return category
}

func TestCreateItem(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)
	category := newCatalog(t, store)

	item, err := svc.Create("Resistor 220R", "Kit de resistores", 500, category.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, item.Stock)
	assert.Equal(t, category.ID, item.CategoryID)

	_, err = svc.Create("LED", "", 10, 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Create("LED", "", -1, category.ID)
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestUpdateItemPartial(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)
	category := newCatalog(t, store)

	item, err := svc.Create("Resistor 220R", "Kit", 500, category.ID)
	require.NoError(t, err)

	newStock := 450
	updated, err := svc.Update(item.ID, ItemUpdate{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 450, updated.Stock)
	assert.Equal(t, "Resistor 220R", updated.Name)
	assert.Equal(t, "Kit", updated.Description)

	newName := "Resistor 330R"
	updated, err = svc.Update(item.ID, ItemUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Resistor 330R", updated.Name)
	assert.Equal(t, 450, updated.Stock)

	negative := -5
	_, err = svc.Update(item.ID, ItemUpdate{Stock: &negative})
	assert.ErrorIs(t, err, ErrInvalidStock)

	missingCategory := uint(999)
	_, err = svc.Update(item.ID, ItemUpdate{CategoryID: &missingCategory})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteItemBlockedByOrderLines(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)
	category := newCatalog(t, store)

	item, err := svc.Create("Arduino UNO", "", 20, category.ID)
	require.NoError(t, err)

	_, err = NewOrderService(store, nil).Place(1, []OrderLine{{ItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	err = svc.Delete(item.ID)
	assert.ErrorIs(t, err, ErrItemReferenced)

	_, err = svc.GetByID(item.ID)
	assert.NoError(t, err)
}

func TestDeleteUnreferencedItem(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)
	category := newCatalog(t, store)

	item, err := svc.Create("ESP32 DevKit", "", 15, category.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))
	_, err = svc.GetByID(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
