package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type stubDriverService struct {
	ports.DriverService
	createFn func(ctx context.Context, in ports.DriverInput) (*domain.Driver, error)
}

func (s *stubDriverService) CreateDriver(ctx context.Context, in ports.DriverInput) (*domain.Driver, error) {
	return s.createFn(ctx, in)
}

func TestDriverHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubDriverService{createFn: func(_ context.Context, in ports.DriverInput) (*domain.Driver, error) {
		if in.ExperienceYears != 0 {
			t.Fatalf("expected explicit zero experience, got %d", in.ExperienceYears)
		}
		return &domain.Driver{ID: 1, FirstName: in.FirstName, Email: in.Email, DateOfBirth: in.DateOfBirth}, nil
	}}
	h := NewDriverHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/drivers", `{
		"firstName": "Lena", "lastName": "Ortiz", "email": "lena@example.com",
		"mobile": "5551234567", "dateOfBirth": "1985-06-15", "licenseNumber": "DL-1",
		"experienceYears": 0, "addressLine1": "42 Elm Road", "city": "Austin",
		"state": "TX", "zipCode": "73301"
	}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp driverResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.DateOfBirth != "1985-06-15" {
		t.Fatalf("unexpected dateOfBirth: %q", resp.DateOfBirth)
	}
}

func TestDriverHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	h := NewDriverHandler(&stubDriverService{createFn: func(context.Context, ports.DriverInput) (*domain.Driver, error) {
		t.Fatalf("service should not be called")
		return nil, nil
	}})

	bodies := []string{
		// experienceYears missing
		`{"firstName":"Lena","lastName":"Ortiz","email":"lena@example.com","licenseNumber":"DL-1","addressLine1":"x","city":"a","state":"b","zipCode":"c"}`,
		// experienceYears out of range
		`{"firstName":"Lena","lastName":"Ortiz","email":"lena@example.com","licenseNumber":"DL-1","experienceYears":51,"addressLine1":"x","city":"a","state":"b","zipCode":"c"}`,
		// bad date
		`{"firstName":"Lena","lastName":"Ortiz","email":"lena@example.com","licenseNumber":"DL-1","experienceYears":1,"dateOfBirth":"15/06/1985","addressLine1":"x","city":"a","state":"b","zipCode":"c"}`,
	}
	for _, body := range bodies {
		c, _ := jsonRequest(e, http.MethodPost, "/api/drivers", body)
		if err := h.Create(c); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("body %s: expected ErrInvalidInput, got %v", body, err)
		}
	}
}
