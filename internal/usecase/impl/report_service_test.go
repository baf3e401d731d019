package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestReportService_CashierInfo(t *testing.T) {
	cashiers := &fakeCashierRepo{cashiers: []entity.Cashier{
		{ID: 1, Name: "Ahmed", Salary: 4000},
		{ID: 2, Name: "Maria", Salary: 4200},
	}}
	service := NewReportService(cashiers, &fakeMenuItemRepo{}, &fakeMenuItemRepo{}, &fakeMenuItemRepo{}, testLogger())

	got, err := service.CashierInfo(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ahmed", got[0].Name)
	assert.Equal(t, "Maria", got[1].Name)
}

func TestReportService_MenuStatus(t *testing.T) {
	appetizers := &fakeMenuItemRepo{items: []entity.MenuItem{
		{ID: int64Ptr(1), Kind: entity.KindAppetizer, Name: "Hummus", Price: 9},
	}}
	drinks := &fakeMenuItemRepo{items: []entity.MenuItem{
		{ID: int64Ptr(1), Kind: entity.KindDrink, Name: "Cola", Price: 7},
		{ID: int64Ptr(2), Kind: entity.KindDrink, Name: "Water", Price: 2},
		{ID: int64Ptr(3), Kind: entity.KindDrink, Name: "Juice", Price: 8},
	}}
	mainCourses := &fakeMenuItemRepo{items: []entity.MenuItem{
		{ID: int64Ptr(1), Kind: entity.KindMainCourse, Name: "Kabsa", Price: 25},
		{ID: int64Ptr(2), Kind: entity.KindMainCourse, Name: "Mandi", Price: 28},
	}}
	service := NewReportService(&fakeCashierRepo{}, appetizers, drinks, mainCourses, testLogger())

	msg, err := service.MenuStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Menu System Online: 1 appetizers, 3 drinks, 2 main courses available.", msg)
}

func TestReportService_MenuStatus_NoPartialMessage(t *testing.T) {
	drinks := &fakeMenuItemRepo{listErr: errors.New("store unreachable")}
	service := NewReportService(&fakeCashierRepo{}, &fakeMenuItemRepo{}, drinks, &fakeMenuItemRepo{}, testLogger())

	msg, err := service.MenuStatus(context.Background())

	require.Error(t, err)
	assert.Empty(t, msg)
}
