package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"karsamrit/internal/domain"
	"karsamrit/internal/dto"
	apperrors "karsamrit/internal/errors"
)

type stubCreator struct {
	order *domain.Order
	err   error
}

func (s *stubCreator) CreateOrder(_ context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" ||
		req.Address == nil || len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("Missing required fields or empty cart")
	}
	return s.order, nil
}

type stubLister struct {
	orders []domain.Order
	err    error
}

func (s *stubLister) ListOrders(context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

type stubUpdater struct {
	order *domain.Order
	err   error
}

func (s *stubUpdater) UpdateStatus(_ context.Context, _ string, status string) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	updated := *s.order
	updated.Status = status
	return &updated, nil
}

func newTestController(creator OrderCreator, lister OrderLister, updater StatusUpdater) *OrderController {
	return NewOrderController(creator, lister, updater, zap.NewNop())
}

func TestCreate_Success(t *testing.T) {
	created := &domain.Order{
		ID:    primitive.NewObjectID(),
		Name:  "Asha",
		Phone: "9876543210",
		Items: []domain.Item{
			{Title: "Cashews", Qty: 2, UnitPrice: 450, LineTotal: 900},
		},
		ItemsTotal:        900,
		Shipping:          0,
		GrandTotal:        900,
		Status:            domain.StatusPlaced,
		EstimatedDelivery: time.Now().UTC().AddDate(0, 0, 3),
	}
	ctrl := newTestController(&stubCreator{order: created}, nil, nil)

	body := `{
		"name": "Asha",
		"phone": "9876543210",
		"address": {"city": "Pune"},
		"items": [{"title": "Cashews", "qty": 2, "unitPrice": 450, "lineTotal": 900}],
		"itemsTotal": 900,
		"shipping": 0,
		"grandTotal": 900
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, created.ID.Hex(), resp.OrderID)
	assert.Equal(t, 900.0, resp.Order.GrandTotal)
	assert.False(t, resp.EstimatedDelivery.IsZero())
	assert.Equal(t, "Order created successfully", resp.Message)
}

func TestCreate_MissingFields(t *testing.T) {
	ctrl := newTestController(&stubCreator{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"name":"Asha"}`))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields or empty cart", resp.Error)
}

func TestCreate_MalformedJSON(t *testing.T) {
	ctrl := newTestController(&stubCreator{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_StorageFailure(t *testing.T) {
	ctrl := newTestController(&stubCreator{err: errors.New("insert failed: socket closed")}, nil, nil)

	body := `{"name":"Asha","phone":"9876543210","address":{},"items":[{"title":"Cashews","qty":1,"unitPrice":450,"lineTotal":450}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.Create(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal detail must not leak
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestList_ReturnsOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: primitive.NewObjectID(), Name: "Ravi"},
		{ID: primitive.NewObjectID(), Name: "Asha"},
	}
	ctrl := newTestController(nil, &stubLister{orders: orders}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()

	ctrl.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Ravi", resp[0].Name)
}

func TestList_EmptyCollectionIsArray(t *testing.T) {
	ctrl := newTestController(nil, &stubLister{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()

	ctrl.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func patchStatusRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+id+"/status", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateStatus_Success(t *testing.T) {
	existing := &domain.Order{ID: primitive.NewObjectID(), Status: domain.StatusPlaced}
	ctrl := newTestController(nil, nil, validatingUpdater{&stubUpdater{order: existing}})

	rec := httptest.NewRecorder()
	ctrl.UpdateStatus(rec, patchStatusRequest(existing.ID.Hex(), `{"status":"packed"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, domain.StatusPacked, resp.Order.Status)
}

// validatingUpdater layers the literal check the real usecase performs on
// top of a stub store.
type validatingUpdater struct {
	next StatusUpdater
}

func (v validatingUpdater) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, apperrors.NewValidationError("Invalid status value")
	}
	return v.next.UpdateStatus(ctx, id, status)
}

func TestUpdateStatus_InvalidLiteral(t *testing.T) {
	existing := &domain.Order{ID: primitive.NewObjectID(), Status: domain.StatusPlaced}
	ctrl := newTestController(nil, nil, validatingUpdater{&stubUpdater{order: existing}})

	rec := httptest.NewRecorder()
	ctrl.UpdateStatus(rec, patchStatusRequest(existing.ID.Hex(), `{"status":"cancelled"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid status value", resp.Error)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	ctrl := newTestController(nil, nil, validatingUpdater{&stubUpdater{err: apperrors.NewNotFoundError("Order not found")}})

	rec := httptest.NewRecorder()
	ctrl.UpdateStatus(rec, patchStatusRequest("64f000000000000000000000", `{"status":"packed"}`))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order not found", resp.Error)
}

func TestUpdateStatus_PermissiveJump(t *testing.T) {
	// placed -> shipped is accepted: the service overwrites without a
	// sequence check
	existing := &domain.Order{ID: primitive.NewObjectID(), Status: domain.StatusPlaced}
	ctrl := newTestController(nil, nil, validatingUpdater{&stubUpdater{order: existing}})

	rec := httptest.NewRecorder()
	ctrl.UpdateStatus(rec, patchStatusRequest(existing.ID.Hex(), `{"status":"shipped"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusShipped, resp.Order.Status)
}
