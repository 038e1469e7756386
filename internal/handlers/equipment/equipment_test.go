package equipment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/dto"
)

func NewMock(t *testing.T) (*EquipmentHandler, *MockService, *MockReconciler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	reconciler := NewMockReconciler(ctrl)
	handler := New(service, reconciler)
	defer ctrl.Finish()
	return handler, service, reconciler
}

func doRequest(handler http.HandlerFunc, method, pattern, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func unit(id int, state domain.EquipmentState) *domain.Equipment {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Equipment{ID: id, Code: "LAV-001", State: state, CreatedAt: now, UpdatedAt: now}
}

func TestCreate(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name        string
		body        string
		prepareMock func()
		status      int
	}{
		{
			name: "created",
			body: `{"code":"LAV-001"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "LAV-001").Return(unit(1, domain.StateAvailable), nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "empty code",
			body:   `{"code":""}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			body:   `{`,
			status: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"code":"LAV-002"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "LAV-002").Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			rec := doRequest(handler.Create, "POST", "/api/equipment", "/api/equipment", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusCreated {
				var resp dto.EquipmentDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "LAV-001", resp.Code)
				assert.Equal(t, "available", resp.State)
			}
		})
	}
}

func TestList(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name        string
		url         string
		prepareMock func()
		status      int
		count       int
	}{
		{
			name: "all units",
			url:  "/api/equipment",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).
					Return([]domain.Equipment{*unit(1, domain.StateAvailable), *unit(2, domain.StateRented)}, nil)
			},
			status: http.StatusOK,
			count:  2,
		},
		{
			name: "filter by state",
			url:  "/api/equipment?state=rented",
			prepareMock: func() {
				service.EXPECT().ListByState(gomock.Any(), domain.StateRented).
					Return([]domain.Equipment{*unit(2, domain.StateRented)}, nil)
			},
			status: http.StatusOK,
			count:  1,
		},
		{
			name:   "unknown state",
			url:    "/api/equipment?state=broken",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			rec := doRequest(handler.List, "GET", "/api/equipment", tt.url, "")
			assert.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusOK {
				var resp []dto.EquipmentDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.count)
			}
		})
	}
}

func TestGet(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name        string
		target      string
		prepareMock func()
		status      int
	}{
		{
			name:   "found",
			target: "/api/equipment/1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(unit(1, domain.StateAvailable), nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "missing",
			target: "/api/equipment/99",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 99).Return(nil, domain.ErrNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "bad id",
			target: "/api/equipment/abc",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			rec := doRequest(handler.Get, "GET", "/api/equipment/{id}", tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDeliver(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name        string
		body        string
		prepareMock func()
		status      int
	}{
		{
			name: "delivered",
			body: `{"order_id":7}`,
			prepareMock: func() {
				service.EXPECT().Deliver(gomock.Any(), 1, 7).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "missing order id",
			body:   `{}`,
			status: http.StatusBadRequest,
		},
		{
			name: "unit not available",
			body: `{"order_id":7}`,
			prepareMock: func() {
				service.EXPECT().Deliver(gomock.Any(), 1, 7).
					Return(&domain.InvalidStateTransitionError{EquipmentID: 1, From: domain.StateInMaintenance, To: domain.StateRented})
			},
			status: http.StatusConflict,
		},
		{
			name: "order not found",
			body: `{"order_id":404}`,
			prepareMock: func() {
				service.EXPECT().Deliver(gomock.Any(), 1, 404).Return(domain.ErrNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name: "order already finished",
			body: `{"order_id":8}`,
			prepareMock: func() {
				service.EXPECT().Deliver(gomock.Any(), 1, 8).Return(domain.ErrOrderNotActive)
			},
			status: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			rec := doRequest(handler.Deliver, "POST", "/api/equipment/{id}/deliver", "/api/equipment/1/deliver", tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSimpleTransitions(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name        string
		fn          http.HandlerFunc
		pattern     string
		target      string
		prepareMock func()
		status      int
	}{
		{
			name:    "return ok",
			fn:      handler.Return,
			pattern: "/api/equipment/{id}/return",
			target:  "/api/equipment/2/return",
			prepareMock: func() {
				service.EXPECT().Return(gomock.Any(), 2).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:    "return on available unit",
			fn:      handler.Return,
			pattern: "/api/equipment/{id}/return",
			target:  "/api/equipment/2/return",
			prepareMock: func() {
				service.EXPECT().Return(gomock.Any(), 2).
					Return(&domain.InvalidStateTransitionError{EquipmentID: 2, From: domain.StateAvailable, To: domain.StateAvailable})
			},
			status: http.StatusConflict,
		},
		{
			name:    "out of service ok",
			fn:      handler.SetOutOfService,
			pattern: "/api/equipment/{id}/out-of-service",
			target:  "/api/equipment/3/out-of-service",
			prepareMock: func() {
				service.EXPECT().SetOutOfService(gomock.Any(), 3).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:    "restore ok",
			fn:      handler.RestoreToService,
			pattern: "/api/equipment/{id}/restore",
			target:  "/api/equipment/3/restore",
			prepareMock: func() {
				service.EXPECT().RestoreToService(gomock.Any(), 3).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:    "retire ok",
			fn:      handler.Retire,
			pattern: "/api/equipment/{id}/retire",
			target:  "/api/equipment/4/retire",
			prepareMock: func() {
				service.EXPECT().Retire(gomock.Any(), 4).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:    "retire missing unit",
			fn:      handler.Retire,
			pattern: "/api/equipment/{id}/retire",
			target:  "/api/equipment/99/retire",
			prepareMock: func() {
				service.EXPECT().Retire(gomock.Any(), 99).Return(domain.ErrNotFound)
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			rec := doRequest(tt.fn, "POST", tt.pattern, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestReconcile(t *testing.T) {
	handler, _, reconciler := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		status      int
		corrected   []int
	}{
		{
			name: "two orphans released",
			prepareMock: func() {
				reconciler.EXPECT().Reconcile(gomock.Any()).Return([]int{2, 5}, nil)
			},
			status:    http.StatusOK,
			corrected: []int{2, 5},
		},
		{
			name: "nothing to do",
			prepareMock: func() {
				reconciler.EXPECT().Reconcile(gomock.Any()).Return(nil, nil)
			},
			status:    http.StatusOK,
			corrected: []int{},
		},
		{
			name: "sweep failure",
			prepareMock: func() {
				reconciler.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := doRequest(handler.Reconcile, "POST", "/api/equipment/reconcile", "/api/equipment/reconcile", "")
			assert.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusOK {
				var resp dto.ReconcileResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.corrected, resp.Corrected)
			}
		})
	}
}
