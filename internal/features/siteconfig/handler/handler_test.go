package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-engine/internal/features/siteconfig/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSiteConfigService is a mock implementation of ports.SiteConfigService.
type MockSiteConfigService struct {
	mock.Mock
}

func (m *MockSiteConfigService) Update(ctx context.Context, cfg domain.SiteConfig) (*domain.SiteConfig, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigService) Get(ctx context.Context) (*domain.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteConfig), args.Error(1)
}

func setupApp(svc *MockSiteConfigService) *fiber.App {
	app := fiber.New()
	h := NewSiteConfigHandler(svc)
	app.Get("/site-config", h.Get)
	app.Put("/site-config", h.Update)
	return app
}

func TestGetSiteConfigHandler(t *testing.T) {
	mockService := new(MockSiteConfigService)
	mockService.On("Get", mock.Anything).Return(&domain.SiteConfig{StoreName: "Kashmir Crafts"}, nil)

	app := setupApp(mockService)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/site-config", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.SiteConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Kashmir Crafts", got.StoreName)
	mockService.AssertExpectations(t)
}

func TestUpdateSiteConfigHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSiteConfigService)
		updated := &domain.SiteConfig{StoreName: "Kashmir Crafts"}
		mockService.On("Update", mock.Anything, mock.AnythingOfType("domain.SiteConfig")).Return(updated, nil)

		app := setupApp(mockService)
		body := bytes.NewReader([]byte(`{"store_name":"Kashmir Crafts"}`))
		req := httptest.NewRequest(http.MethodPut, "/site-config", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		mockService := new(MockSiteConfigService)
		mockService.On("Update", mock.Anything, mock.AnythingOfType("domain.SiteConfig")).
			Return(nil, fmt.Errorf("%w: field StoreName failed on required", domain.ErrInvalidConfig))

		app := setupApp(mockService)
		req := httptest.NewRequest(http.MethodPut, "/site-config", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		app := setupApp(new(MockSiteConfigService))
		req := httptest.NewRequest(http.MethodPut, "/site-config", bytes.NewReader([]byte(`{bad`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
