package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
	"github.com/airbean/order-system/internal/core/service"
)

type stubCampaignService struct {
	validateFn func(ctx context.Context, ids []string) (*domain.ValidationResult, error)
	createFn   func(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error)
	listFn     func(ctx context.Context) ([]*domain.Campaign, error)
}

func (s *stubCampaignService) ValidateProducts(ctx context.Context, ids []string) (*domain.ValidationResult, error) {
	return s.validateFn(ctx, ids)
}

func (s *stubCampaignService) CreateCampaign(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	return s.createFn(ctx, in)
}

func (s *stubCampaignService) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	return s.listFn(ctx)
}

func newCampaignContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCampaignHandler_Create_Success(t *testing.T) {
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
			if len(in.ProductIDs) != 2 || in.Price != 49 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Campaign{ID: "c1", ProductIDs: in.ProductIDs, Price: in.Price}, nil
		},
	}
	h := NewCampaignHandler(stub)

	c, rec := newCampaignContext(t, `{"productIds":["p1","p2"],"price":49}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	campaign, ok := resp["campaign"].(map[string]any)
	if !ok || campaign["id"] != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCampaignHandler_Create_MissingProducts(t *testing.T) {
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
			return nil, &service.MissingProductsError{MissingIDs: []string{"missing-id"}}
		},
	}
	h := NewCampaignHandler(stub)

	c, rec := newCampaignContext(t, `{"productIds":["missing-id"],"price":49}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp missingProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.MissingIDs) != 1 || resp.MissingIDs[0] != "missing-id" {
		t.Fatalf("expected missing [missing-id], got %v", resp.MissingIDs)
	}
}

// A catalog-store failure is not "campaign invalid": the handler propagates
// it so the central error handler renders a retryable 500.
func TestCampaignHandler_Create_ValidationUnavailable(t *testing.T) {
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
			return nil, domain.ErrValidationUnavailable
		},
	}
	h := NewCampaignHandler(stub)

	c, _ := newCampaignContext(t, `{"productIds":["p1"],"price":49}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestCampaignHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewCampaignHandler(stub)

	c, rec := newCampaignContext(t, `{"productIds":[],"price":49}`)
	if err := h.Create(c); err != nil {
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 HTTPError, got %v", err)
		}
		return
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCampaignHandler_List(t *testing.T) {
	stub := &stubCampaignService{
		listFn: func(ctx context.Context) ([]*domain.Campaign, error) {
			return []*domain.Campaign{{ID: "c1", ProductIDs: []string{"p1"}, Price: 29}}, nil
		},
	}
	h := NewCampaignHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/campaigns", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []campaignResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
