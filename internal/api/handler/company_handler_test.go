package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type stubCompanyService struct {
	createFn func(ctx context.Context, in ports.CompanyInput) (*domain.Company, error)
	searchFn func(ctx context.Context, q ports.CompanySearch) (*ports.Page[*domain.Company], error)
}

func (s *stubCompanyService) CreateCompany(ctx context.Context, in ports.CompanyInput) (*domain.Company, error) {
	return s.createFn(ctx, in)
}

func (s *stubCompanyService) UpdateCompany(context.Context, int64, ports.CompanyInput) (*domain.Company, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCompanyService) GetCompany(_ context.Context, id int64) (*domain.Company, error) {
	return nil, domain.Errorf(domain.ErrNotFound, "company not found with id: %d", id)
}

func (s *stubCompanyService) ListCompanies(context.Context) ([]*domain.Company, error) {
	return nil, nil
}

func (s *stubCompanyService) SearchCompanies(ctx context.Context, q ports.CompanySearch) (*ports.Page[*domain.Company], error) {
	return s.searchFn(ctx, q)
}

func (s *stubCompanyService) DeleteCompany(context.Context, int64) error { return nil }

const validCompany = `{
	"companyName": "Acme Haulage",
	"registrationNumber": "REG-1",
	"establishedOn": "2001-04-12",
	"website": "https://acme.example.com",
	"addressLine1": "1 Main Street",
	"city": "Springfield",
	"state": "IL",
	"zipCode": "62701",
	"primaryContactFirstName": "Ada",
	"primaryContactLastName": "Lovelace",
	"primaryContactEmail": "ada@acme.example.com",
	"primaryContactMobile": "5551234567"
}`

func TestCompanyHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{createFn: func(_ context.Context, in ports.CompanyInput) (*domain.Company, error) {
		if in.EstablishedOn == nil || !in.EstablishedOn.Equal(time.Date(2001, 4, 12, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("establishedOn not parsed: %v", in.EstablishedOn)
		}
		return &domain.Company{
			ID:                 9,
			CompanyName:        in.CompanyName,
			RegistrationNumber: in.RegistrationNumber,
			EstablishedOn:      in.EstablishedOn,
			Details:            domain.CompanyDetails{City: in.City},
		}, nil
	}}
	h := NewCompanyHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/companies", validCompany)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp companyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 9 || resp.EstablishedOn != "2001-04-12" || resp.City != "Springfield" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCompanyHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{createFn: func(context.Context, ports.CompanyInput) (*domain.Company, error) {
		t.Fatalf("service should not be called")
		return nil, nil
	}})

	var body map[string]any
	_ = json.Unmarshal([]byte(validCompany), &body)
	body["primaryContactMobile"] = "12345"
	raw, _ := json.Marshal(body)

	c, _ := jsonRequest(e, http.MethodPost, "/api/companies", string(raw))
	err := h.Create(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "primaryContactMobile must be exactly 10 characters" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCompanyHandler_Search_PageShape(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{searchFn: func(_ context.Context, q ports.CompanySearch) (*ports.Page[*domain.Company], error) {
		if q.CompanyName != "acme" || q.Page != 1 || q.Size != 2 {
			t.Fatalf("unexpected query: %+v", q)
		}
		items := []*domain.Company{{ID: 3, CompanyName: "Acme"}, {ID: 4, CompanyName: "Acme 2"}}
		return ports.NewPage(items, 5, q.PageRequest), nil
	}}
	h := NewCompanyHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/companies/search", `{"companyName":"acme","page":1,"size":2}`)
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalElements"] != float64(5) || resp["totalPages"] != float64(3) ||
		resp["number"] != float64(1) || resp["size"] != float64(2) {
		t.Fatalf("unexpected page: %s", rec.Body.String())
	}
	if content, _ := resp["content"].([]any); len(content) != 2 {
		t.Fatalf("expected 2 items, got %s", rec.Body.String())
	}
}

func TestCompanyHandler_Search_RejectsOversizedPage(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{})

	c, _ := jsonRequest(e, http.MethodPost, "/api/companies/search", `{"size":500}`)
	if err := h.Search(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompanyHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{})

	c, _ := jsonRequest(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("77")
	err := h.Get(c)
	if !errors.Is(err, domain.ErrNotFound) || err.Error() != "company not found with id: 77" {
		t.Fatalf("unexpected error: %v", err)
	}
}
