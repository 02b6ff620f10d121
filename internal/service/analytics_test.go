package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"
	"github.com/varungor365/fashun-order-service/internal/service"
	mocks "github.com/varungor365/fashun-order-service/internal/service/mocks"
	txMocks "github.com/varungor365/fashun-order-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderAnalytics(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)

	orders := []entities.Order{
		{
			Total:         decimal.RequireFromString("100.00"),
			Status:        entities.StatusDelivered,
			PaymentStatus: entities.PaymentPaid,
			Items: []entities.OrderItem{
				{ProductName: "Oversized Hoodie", Quantity: 2},
				{ProductName: "Graphic Tee", Quantity: 1},
			},
		},
		{
			Total:         decimal.RequireFromString("50.50"),
			Status:        entities.StatusPending,
			PaymentStatus: entities.PaymentPending,
			Items: []entities.OrderItem{
				{ProductName: "Graphic Tee", Quantity: 4},
			},
		},
		{
			Total:         decimal.RequireFromString("25.00"),
			Status:        entities.StatusDelivered,
			PaymentStatus: entities.PaymentPaid,
			Items: []entities.OrderItem{
				{ProductName: "Cargo Pants", Quantity: 2},
			},
		},
	}
	orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(orders, nil)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	report, err := svc.GetOrderAnalytics(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalOrders)
	assert.Equal(t, "175.50", report.TotalRevenue.StringFixed(2))
	assert.Equal(t, "58.50", report.AverageOrderValue.StringFixed(2))

	assert.Equal(t, 2, report.StatusBreakdown[entities.StatusDelivered])
	assert.Equal(t, 1, report.StatusBreakdown[entities.StatusPending])
	assert.Equal(t, 2, report.PaymentStatusBreakdown[entities.PaymentPaid])

	// every status is present even when no order carries it
	assert.Len(t, report.StatusBreakdown, len(entities.OrderStatuses()))
	assert.Len(t, report.PaymentStatusBreakdown, len(entities.PaymentStatuses()))
	assert.Equal(t, 0, report.StatusBreakdown[entities.StatusRefunded])

	assert.Equal(t, []entities.ProductSales{
		{ProductName: "Graphic Tee", Quantity: 5},
		{ProductName: "Oversized Hoodie", Quantity: 2},
		{ProductName: "Cargo Pants", Quantity: 2},
	}, report.TopProducts)
}

func TestOrderService_GetOrderAnalytics_Empty(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, nil)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	report, err := svc.GetOrderAnalytics(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalOrders)
	assert.True(t, report.AverageOrderValue.IsZero())
	assert.Empty(t, report.TopProducts)
	assert.Len(t, report.StatusBreakdown, len(entities.OrderStatuses()))
}

func TestOrderService_GetOrderAnalytics_TopProductsCap(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)

	var items []entities.OrderItem
	for i := 0; i < 15; i++ {
		items = append(items, entities.OrderItem{
			ProductName: fmt.Sprintf("product-%02d", i),
			Quantity:    15 - i,
		})
	}
	orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).
		Return([]entities.Order{{Items: items}}, nil)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	report, err := svc.GetOrderAnalytics(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 10)
	assert.Equal(t, "product-00", report.TopProducts[0].ProductName)
	assert.Equal(t, "product-09", report.TopProducts[9].ProductName)
}

func TestOrderService_GetOrderAnalytics_StableTies(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)

	// equal quantities keep the order products were first seen in
	orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return([]entities.Order{
		{Items: []entities.OrderItem{
			{ProductName: "beanie", Quantity: 3},
			{ProductName: "scarf", Quantity: 3},
			{ProductName: "gloves", Quantity: 3},
		}},
	}, nil)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	report, err := svc.GetOrderAnalytics(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []entities.ProductSales{
		{ProductName: "beanie", Quantity: 3},
		{ProductName: "scarf", Quantity: 3},
		{ProductName: "gloves", Quantity: 3},
	}, report.TopProducts)
}

func TestOrderService_GetOrderAnalytics_DateRange(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	orderRepo.EXPECT().
		ListOrders(mock.Anything, entities.OrderFilter{CreatedFrom: &from, CreatedTo: &to}).
		Return(nil, nil)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	_, err := svc.GetOrderAnalytics(context.Background(), &from, &to)
	require.NoError(t, err)
}

func TestOrderService_GetOrderAnalytics_RepoError(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)

	dbError := errors.New("db error")
	orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, dbError)

	svc := service.NewOrderService(testLogger(), txMocks.NewMockManager(t), orderRepo,
		mocks.NewMockProductRepo(t), mocks.NewMockNotifier(t), mocks.NewMockCache(t))

	_, err := svc.GetOrderAnalytics(context.Background(), nil, nil)
	assert.ErrorIs(t, err, dbError)
}
