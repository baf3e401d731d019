package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Add_Success(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	service := NewDrinkService(repo, testLogger())

	created, err := service.Add(context.Background(), "Cola", "7")

	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, "Cola", created.Name)
	assert.Equal(t, 7, created.Price)
	assert.Equal(t, entity.KindDrink, created.Kind)
	require.NotNil(t, repo.lastCreate)
	assert.Nil(t, repo.lastCreate.ReceiptID)
}

func TestCatalogService_Add_TrimsInput(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	service := NewAppetizerService(repo, testLogger())

	created, err := service.Add(context.Background(), "  Spring Rolls  ", " 12 ")

	require.NoError(t, err)
	assert.Equal(t, "Spring Rolls", created.Name)
	assert.Equal(t, 12, created.Price)
}

func TestCatalogService_Add_Validation(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		priceText string
		wantMsg   string
	}{
		{"empty price", "Cola", "", "Price cannot be empty."},
		{"blank price", "Cola", "   ", "Price cannot be empty."},
		{"non-numeric price", "Cola", "abc", "Price must be a valid whole number."},
		{"fractional price", "Cola", "3.5", "Price must be a valid whole number."},
		{"negative price", "Cola", "-5", "Price cannot be negative."},
		{"blank name", "   ", "3", "Item name cannot be empty."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeMenuItemRepo{}
			service := NewDrinkService(repo, testLogger())

			_, err := service.Add(context.Background(), tt.itemName, tt.priceText)

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
			assert.Nil(t, repo.lastCreate, "invalid input must not reach the gateway")
		})
	}
}

func TestCatalogService_Add_PriceOrderBeforeName(t *testing.T) {
	// Both fields invalid: the price rule wins.
	service := NewDrinkService(&fakeMenuItemRepo{}, testLogger())

	_, err := service.Add(context.Background(), "", "abc")

	require.Error(t, err)
	assert.EqualError(t, err, "Price must be a valid whole number.")
}

func TestCatalogService_Update_NilSelection(t *testing.T) {
	tests := []struct {
		kind    entity.Kind
		wantMsg string
	}{
		{entity.KindAppetizer, "No appetizer selected!"},
		{entity.KindDrink, "No drink selected!"},
		{entity.KindMainCourse, "No main course selected!"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			service := NewCatalogService(tt.kind, &fakeMenuItemRepo{}, testLogger())

			_, err := service.Update(context.Background(), nil, "Chips", "3")

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestCatalogService_Update_SelectionCheckedBeforeParsing(t *testing.T) {
	service := NewAppetizerService(&fakeMenuItemRepo{}, testLogger())

	_, err := service.Update(context.Background(), nil, "", "not-a-number")

	require.Error(t, err)
	assert.EqualError(t, err, "No appetizer selected!")
}

func TestCatalogService_Update_Success(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	service := NewMainCourseService(repo, testLogger())

	created, err := service.Add(context.Background(), "Kabsa", "25")
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, "Kabsa Special", "30")

	require.NoError(t, err)
	assert.Equal(t, *created.ID, *updated.ID)
	assert.Equal(t, "Kabsa Special", updated.Name)
	assert.Equal(t, 30, updated.Price)
	require.NotNil(t, repo.lastUpdate)
	assert.Equal(t, *created.ID, repo.lastUpdate.ID)
}

func TestCatalogService_Update_AbsentID(t *testing.T) {
	service := NewDrinkService(&fakeMenuItemRepo{}, testLogger())

	id := int64(99)
	_, err := service.Update(context.Background(), &id, "Cola", "7")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.False(t, domainerrors.IsValidation(err))
}

func TestCatalogService_Remove_AbsentID(t *testing.T) {
	service := NewDrinkService(&fakeMenuItemRepo{}, testLogger())

	err := service.Remove(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_GetByID_Absent(t *testing.T) {
	service := NewDrinkService(&fakeMenuItemRepo{}, testLogger())

	item, ok, err := service.GetByID(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, item)
}

func TestCatalogService_RoundTrip(t *testing.T) {
	service := NewAppetizerService(&fakeMenuItemRepo{}, testLogger())

	created, err := service.Add(context.Background(), "Hummus", "9")
	require.NoError(t, err)

	found, ok, err := service.GetByID(context.Background(), *created.ID)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestCatalogService_List_Idempotent(t *testing.T) {
	service := NewDrinkService(&fakeMenuItemRepo{}, testLogger())

	_, err := service.Add(context.Background(), "Cola", "7")
	require.NoError(t, err)
	_, err = service.Add(context.Background(), "Water", "2")
	require.NoError(t, err)

	first, err := service.List(context.Background())
	require.NoError(t, err)
	second, err := service.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCatalogService_Remove(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	service := NewDrinkService(repo, testLogger())

	created, err := service.Add(context.Background(), "Cola", "7")
	require.NoError(t, err)

	require.NoError(t, service.Remove(context.Background(), *created.ID))

	_, ok, err := service.GetByID(context.Background(), *created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
