package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ailawatlas/catalog_service/internal/domain"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLawService struct {
	mock.Mock
}

func (m *MockLawService) ListLaws(ctx context.Context) ([]domain.Law, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Law), args.Error(1)
}

func (m *MockLawService) SearchLaws(ctx context.Context, query string) ([]domain.Law, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Law), args.Error(1)
}

func (m *MockLawService) GetLaw(ctx context.Context, lawID uint) (*domain.Law, error) {
	args := m.Called(ctx, lawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Law), args.Error(1)
}

func (m *MockLawService) CreateLaw(ctx context.Context, input dto.LawInput) (*domain.Law, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Law), args.Error(1)
}

func (m *MockLawService) UpdateLaw(ctx context.Context, lawID uint, input dto.LawInput) (*domain.Law, error) {
	args := m.Called(ctx, lawID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Law), args.Error(1)
}

func (m *MockLawService) DeleteLaw(ctx context.Context, lawID uint) error {
	args := m.Called(ctx, lawID)
	return args.Error(0)
}

func setupLawApp(svc *MockLawService, auth helper.Auth) *fiber.App {
	app := fiber.New()
	NewLawHandler(svc).SetupRoutes(app, auth)
	return app
}

func TestLawHandler_ListLaws_Public(t *testing.T) {
	svc := new(MockLawService)
	app := setupLawApp(svc, helper.SetupAuth("test-secret"))

	svc.On("ListLaws", mock.Anything).
		Return([]domain.Law{{ID: 1, Country: "European Union", Title: "AI Act"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/laws", nil)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var laws []domain.Law
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&laws))
	assert.Len(t, laws, 1)
	assert.Equal(t, "AI Act", laws[0].Title)
}

func TestLawHandler_Search_Public(t *testing.T) {
	svc := new(MockLawService)
	app := setupLawApp(svc, helper.SetupAuth("test-secret"))

	svc.On("SearchLaws", mock.Anything, "china").
		Return([]domain.Law{}, nil).Once()

	req := httptest.NewRequest("GET", "/api/search?q=china", nil)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestLawHandler_Create_RequiresToken(t *testing.T) {
	svc := new(MockLawService)
	app := setupLawApp(svc, helper.SetupAuth("test-secret"))

	body, _ := json.Marshal(dto.LawInput{Country: "Brazil", Title: "PL 2338/2023"})
	req := httptest.NewRequest("POST", "/api/laws", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	svc.AssertNotCalled(t, "CreateLaw", mock.Anything, mock.Anything)
}

func TestLawHandler_Create_WithToken(t *testing.T) {
	svc := new(MockLawService)
	auth := helper.SetupAuth("test-secret")
	app := setupLawApp(svc, auth)

	token, err := auth.GenerateToken(1, "a@x.com")
	assert.NoError(t, err)

	input := dto.LawInput{Country: "Brazil", Title: "PL 2338/2023"}
	svc.On("CreateLaw", mock.Anything, input).
		Return(&domain.Law{ID: 4, Country: "Brazil", Title: "PL 2338/2023"}, nil).Once()

	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/api/laws", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var law domain.Law
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&law))
	assert.Equal(t, uint(4), law.ID)
	svc.AssertExpectations(t)
}

func TestLawHandler_Delete_InvalidID(t *testing.T) {
	svc := new(MockLawService)
	auth := helper.SetupAuth("test-secret")
	app := setupLawApp(svc, auth)

	token, err := auth.GenerateToken(1, "a@x.com")
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/laws/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "DeleteLaw", mock.Anything, mock.Anything)
}
