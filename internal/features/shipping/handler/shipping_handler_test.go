package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-engine/internal/features/shipping/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShippingService is a mock implementation of ports.ShippingService
type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) DetectZone(address domain.Address) (*domain.Zone, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockShippingService) Calculate(address domain.Address, subtotal decimal.Decimal) (*domain.Calculation, error) {
	args := m.Called(address, subtotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockShippingService) Zones() []domain.Zone {
	args := m.Called()
	return args.Get(0).([]domain.Zone)
}

func setupApp(service *MockShippingService) *fiber.App {
	app := fiber.New()
	h := NewShippingHandler(service)
	app.Post("/shipping/calculate", h.Calculate)
	app.Post("/shipping/detect-zone", h.DetectZone)
	app.Get("/shipping/zones", h.ListZones)
	return app
}

func TestShippingHandler_Calculate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		calc := &domain.Calculation{
			Zone:         domain.Zone{ID: "domestic-standard"},
			ShippingCost: decimal.NewFromInt(100),
		}
		mockService.On("Calculate", mock.Anything, mock.Anything).Return(calc, nil).Once()

		body, _ := json.Marshal(CalculateRequest{
			Address:    domain.Address{State: "Maharashtra", Country: "India"},
			OrderTotal: decimal.NewFromInt(500),
		})

		req := httptest.NewRequest("POST", "/shipping/calculate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("NotServiceable", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		mockService.On("Calculate", mock.Anything, mock.Anything).Return(nil, domain.ErrNotServiceable).Once()

		body, _ := json.Marshal(CalculateRequest{
			Address: domain.Address{Country: "Unlisted Country"},
		})

		req := httptest.NewRequest("POST", "/shipping/calculate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		mockService.On("Calculate", mock.Anything, mock.Anything).Return(nil, domain.ErrValidation).Once()

		body, _ := json.Marshal(CalculateRequest{})
		req := httptest.NewRequest("POST", "/shipping/calculate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/shipping/calculate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestShippingHandler_DetectZone(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		zone := &domain.Zone{ID: "home-region-preferential"}
		mockService.On("DetectZone", mock.Anything).Return(zone, nil).Once()

		body, _ := json.Marshal(DetectZoneRequest{
			Address: domain.Address{State: "Jammu and Kashmir", Country: "India"},
		})

		req := httptest.NewRequest("POST", "/shipping/detect-zone", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.Zone
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "home-region-preferential", got.ID)
	})

	t.Run("NotServiceable", func(t *testing.T) {
		mockService := new(MockShippingService)
		app := setupApp(mockService)

		mockService.On("DetectZone", mock.Anything).Return(nil, domain.ErrNotServiceable).Once()

		body, _ := json.Marshal(DetectZoneRequest{Address: domain.Address{Country: "Atlantis"}})
		req := httptest.NewRequest("POST", "/shipping/detect-zone", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestShippingHandler_ListZones(t *testing.T) {
	mockService := new(MockShippingService)
	app := setupApp(mockService)

	mockService.On("Zones").Return([]domain.Zone{
		{ID: "home-region-preferential"},
		{ID: "domestic-standard"},
	}).Once()

	req := httptest.NewRequest("GET", "/shipping/zones", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var zones []domain.Zone
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&zones))
	assert.Len(t, zones, 2)
}
