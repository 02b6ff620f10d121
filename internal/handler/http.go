package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/varungor365/fashun-order-service/internal/entities"
	"github.com/varungor365/fashun-order-service/internal/service"
	"github.com/varungor365/fashun-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderNumber string, in service.UpdateStatusInput) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetOrderAnalytics(ctx context.Context, from, to *time.Time) (entities.AnalyticsReport, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/analytics", h.GetAnalytics)
		r.Get("/{order_number}", h.GetOrder)
		r.Patch("/{order_number}/status", h.UpdateStatus)
	})
}

// CreateOrder accepts a cart and reserves inventory for it.
// @Summary      Create an order
// @Description  Validates and atomically reserves stock for every cart item, computes totals and persists the order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Cart"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Unknown product or insufficient stock"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToInput(req))

	var notFound *entities.ProductNotFoundError
	if errors.As(err, &notFound) {
		utils.WriteErrorDetails(w, notFound.Error(), map[string]any{
			"product_id": notFound.ProductID,
		}, http.StatusBadRequest)
		return
	}

	var noStock *entities.InsufficientStockError
	if errors.As(err, &noStock) {
		utils.WriteErrorDetails(w, noStock.Error(), map[string]any{
			"product_id": noStock.ProductID,
			"requested":  noStock.Requested,
			"available":  noStock.Available,
		}, http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns an order by its number.
// @Summary      Get order by number
// @Tags         orders
// @Produce      json
// @Param        order_number  path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_number} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	if err := h.validate.Var(orderNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByNumber(ctx, orderNumber)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders returns orders filtered by customer and status. A gateway that
// authenticated the caller sets X-Customer-ID, which pins the filter to that
// customer regardless of the query.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        customer_id     query   string  false  "Customer id"
// @Param        customer_email  query   string  false  "Customer email"
// @Param        status          query   string  false  "Order status"
// @Param        X-Customer-ID   header  string  false  "Authenticated customer id"
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := entities.OrderFilter{
		CustomerID:    r.URL.Query().Get("customer_id"),
		CustomerEmail: r.URL.Query().Get("customer_email"),
		Status:        entities.Status(r.URL.Query().Get("status")),
	}
	if cid := r.Header.Get("X-Customer-ID"); cid != "" {
		filter.CustomerID = cid
	}

	if filter.Status != "" && !filter.Status.Valid() {
		utils.WriteError(w, "unknown order status", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrders(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// UpdateStatus applies order/payment status changes with their side effects.
// @Summary      Update order status
// @Description  Shipped and delivered stamp their timestamps, cancellation releases reserved stock
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_number  path      string               true  "Order number"
// @Param        request       body      UpdateStatusRequest  true  "Changes"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Illegal status transition or concurrent update"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_number}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, orderNumber, service.UpdateStatusInput{
		Status:         entities.Status(req.Status),
		PaymentStatus:  entities.PaymentStatus(req.PaymentStatus),
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrInvalidStatusTransition) {
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrOrderConflict) {
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetAnalytics aggregates orders over an optional date range.
// @Summary      Order analytics
// @Tags         orders
// @Produce      json
// @Param        start_date  query  string  false  "RFC3339 or YYYY-MM-DD"
// @Param        end_date    query  string  false  "RFC3339 or YYYY-MM-DD, a bare date covers the whole day"
// @Success      200  {object}  AnalyticsReport
// @Failure      400  {object}  utils.ErrorResponse "Malformed date"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/analytics [get]
func (h *HTTPHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, err := parseDate(r.URL.Query().Get("start_date"), false)
	if err != nil {
		utils.WriteError(w, "malformed start_date", http.StatusBadRequest)
		return
	}
	to, err := parseDate(r.URL.Query().Get("end_date"), true)
	if err != nil {
		utils.WriteError(w, "malformed end_date", http.StatusBadRequest)
		return
	}

	report, err := h.svc.GetOrderAnalytics(ctx, from, to)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build analytics", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ReportEntityToJSON(report), http.StatusOK)
}

// parseDate accepts RFC3339 or a bare date. A bare date used as the end of
// a range is pushed to the last instant of that day, so the whole day stays
// inside the inclusive window.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
