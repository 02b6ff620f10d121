package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"
	"github.com/varungor365/fashun-order-service/internal/handler"
	mocks "github.com/varungor365/fashun-order-service/internal/handler/mocks"
	"github.com/varungor365/fashun-order-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(svc *mocks.MockOrderService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"customer_email": "jay@example.com",
		"items": [
			{"product_id": "p1", "product_name": "Oversized Hoodie", "quantity": 2, "unit_price": "49.99"}
		],
		"shipping_cost": "5.99",
		"tax": "0",
		"discount": "0"
	}`

	validOrder := entities.Order{
		OrderNumber:   "FUC-1-AB",
		CustomerEmail: "jay@example.com",
		Subtotal:      decimal.RequireFromString("99.98"),
		Total:         decimal.RequireFromString("105.97"),
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"FUC-1-AB"`,
		},
		{
			name:         "malformed json",
			body:         `{"items": [`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "empty cart",
			body:         `{"customer_email": "jay@example.com", "items": []}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "no customer reference",
			body:         `{"items": [{"product_id": "p1", "product_name": "x", "quantity": 1}]}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "zero quantity",
			body:         `{"customer_id": "c1", "items": [{"product_id": "p1", "product_name": "x", "quantity": 0}]}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "variant size without color",
			body:         `{"customer_id": "c1", "items": [{"product_id": "p1", "product_name": "x", "quantity": 1, "variant_size": "M"}]}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.ProductNotFoundError{
						ProductID: "p1", ProductName: "Oversized Hoodie",
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product_id":"p1"`,
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{
						ProductID: "p1", ProductName: "Oversized Hoodie",
						Requested: 2, Available: 1,
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"requested":2`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_CreateOrder_PassesCart(t *testing.T) {
	svc := mocks.NewMockOrderService(t)

	var got service.CreateOrderInput
	svc.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in service.CreateOrderInput) {
			got = in
		}).
		Return(entities.Order{}, nil).Once()

	r := newTestHandler(svc)

	body := `{
		"customer_id": "c1",
		"items": [
			{"product_id": "p2", "product_name": "Graphic Tee", "variant_size": "M", "variant_color": "Black", "quantity": 3, "unit_price": "19.90"}
		],
		"shipping_cost": "4.50"
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "c1", got.CustomerID)
	assert.Equal(t, "M", got.Items[0].VariantSize)
	assert.Equal(t, "Black", got.Items[0].VariantColor)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, "19.90", got.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "4.50", got.ShippingCost.StringFixed(2))
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{OrderNumber: "FUC-1-AB"}

	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "success",
			orderNumber: "FUC-1-AB",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "FUC-1-AB").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"FUC-1-AB"`,
		},
		{
			name:        "not found",
			orderNumber: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:        "internal error",
			orderNumber: "FUC-1-AB",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "FUC-1-AB").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderNumber, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		customerID   string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "filter by customer",
			query: "?customer_id=c1&status=pending",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, entities.OrderFilter{
						CustomerID: "c1",
						Status:     entities.StatusPending,
					}).
					Return([]entities.Order{{OrderNumber: "FUC-1-AB"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"FUC-1-AB"`,
		},
		{
			name:  "empty result is a json array",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "header pins the customer filter",
			query:      "?customer_id=someone-else",
			customerID: "c1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, entities.OrderFilter{CustomerID: "c1"}).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "unknown status",
			query:        "?status=teleported",
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"unknown order status"`,
		},
		{
			name:  "internal error",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders"+tc.query, nil)
			if tc.customerID != "" {
				req.Header.Set("X-Customer-ID", tc.customerID)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	shipped := entities.Order{
		OrderNumber:    "FUC-1-AB",
		Status:         entities.StatusShipped,
		TrackingNumber: "TRK-42",
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status": "shipped", "tracking_number": "TRK-42"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "FUC-1-AB", service.UpdateStatusInput{
						Status:         entities.StatusShipped,
						TrackingNumber: "TRK-42",
					}).
					Return(shipped, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"shipped"`,
		},
		{
			name:         "unknown status value",
			body:         `{"status": "teleported"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "not found",
			body: `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "FUC-1-AB", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "illegal transition",
			body: `{"status": "processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "FUC-1-AB", mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: delivered -> processing",
						entities.ErrInvalidStatusTransition)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `delivered -> processing`,
		},
		{
			name: "lost a concurrent update",
			body: `{"status": "cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "FUC-1-AB", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `modified concurrently`,
		},
		{
			name: "internal error",
			body: `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "FUC-1-AB", mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPatch, "/orders/FUC-1-AB/status", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetAnalytics(t *testing.T) {
	report := entities.AnalyticsReport{
		TotalOrders:  2,
		TotalRevenue: decimal.RequireFromString("150.00"),
		StatusBreakdown: map[entities.Status]int{
			entities.StatusPending: 2,
		},
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "no range",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderAnalytics(mock.Anything, mock.Anything, mock.Anything).
					Return(report, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_orders":2`,
		},
		{
			name:  "date range",
			query: "?start_date=2026-01-01&end_date=2026-01-31",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderAnalytics(mock.Anything, mock.Anything, mock.Anything).
					Return(report, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_revenue":"150.00"`,
		},
		{
			name:         "malformed date",
			query:        "?start_date=last-tuesday",
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"malformed start_date"`,
		},
		{
			name:  "internal error",
			query: "",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderAnalytics(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.AnalyticsReport{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/analytics"+tc.query, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetAnalytics_DateOnlyEndCoversDay(t *testing.T) {
	svc := mocks.NewMockOrderService(t)

	var from, to *time.Time
	svc.EXPECT().
		GetOrderAnalytics(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, start, end *time.Time) {
			from, to = start, end
		}).
		Return(entities.AnalyticsReport{}, nil).Once()

	r := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/orders/analytics?start_date=2026-01-01&end_date=2026-01-31", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *from)
	// an end bound without a time of day still includes that day's orders
	assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999999999, time.UTC), *to)
}

func TestHTTPHandler_ZeroMoneyIsRendered(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		GetOrderByNumber(mock.Anything, "FUC-1-AB").
		Return(entities.Order{OrderNumber: "FUC-1-AB"}, nil).Once()

	r := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/orders/FUC-1-AB", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "0.00", resp["total"])
	assert.Equal(t, "0.00", resp["subtotal"])
}
