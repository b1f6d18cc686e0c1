package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type CompanyService struct {
	repo ports.CompanyRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewCompanyService(repo ports.CompanyRepository, log zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, log: log, now: time.Now}
}

func (s *CompanyService) CreateCompany(ctx context.Context, in ports.CompanyInput) (*domain.Company, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByRegistrationNumber(ctx, in.RegistrationNumber)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	if exists {
		return nil, duplicateRegistration()
	}

	now := s.now().UTC()
	c := &domain.Company{CreatedAt: now, UpdatedAt: now}
	applyCompanyInput(c, in)
	c.Details.CreatedAt = now

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("company_id", created.ID).Str("registration_number", created.RegistrationNumber).Msg("company created")
	return created, nil
}

// UpdateCompany overwrites every writable field. The registration number is
// re-checked for uniqueness only when it changes.
func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, in ports.CompanyInput) (*domain.Company, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	c, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.RegistrationNumber != c.RegistrationNumber {
		exists, err := s.repo.ExistsByRegistrationNumber(ctx, in.RegistrationNumber)
		if err != nil {
			return nil, fmt.Errorf("update company: %w", err)
		}
		if exists {
			return nil, duplicateRegistration()
		}
	}

	applyCompanyInput(c, in)
	c.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, companyNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, companyNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return cs, nil
}

func (s *CompanyService) SearchCompanies(ctx context.Context, q ports.CompanySearch) (*ports.Page[*domain.Company], error) {
	q.PageRequest = q.PageRequest.Normalize()
	items, total, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return ports.NewPage(items, total, q.PageRequest), nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return companyNotFound(id)
		}
		return fmt.Errorf("delete company: %w", err)
	}
	s.log.Info().Int64("company_id", id).Msg("company deleted")
	return nil
}

func (s *CompanyService) validate(in ports.CompanyInput) error {
	if in.CompanyName == "" || in.RegistrationNumber == "" {
		return domain.Errorf(domain.ErrInvalidInput, "company name and registration number are required")
	}
	if in.EstablishedOn != nil && in.EstablishedOn.After(s.now()) {
		return domain.Errorf(domain.ErrInvalidInput, "established date cannot be in the future")
	}
	return nil
}

func applyCompanyInput(c *domain.Company, in ports.CompanyInput) {
	c.CompanyName = in.CompanyName
	c.RegistrationNumber = in.RegistrationNumber
	c.EstablishedOn = in.EstablishedOn
	c.Website = in.Website
	c.Details.AddressLine1 = in.AddressLine1
	c.Details.AddressLine2 = in.AddressLine2
	c.Details.City = in.City
	c.Details.State = in.State
	c.Details.ZipCode = in.ZipCode
	c.Details.PrimaryContactFirstName = in.PrimaryContactFirstName
	c.Details.PrimaryContactLastName = in.PrimaryContactLastName
	c.Details.PrimaryContactEmail = in.PrimaryContactEmail
	c.Details.PrimaryContactMobile = in.PrimaryContactMobile
}

func companyNotFound(id int64) error {
	return domain.Errorf(domain.ErrNotFound, "company not found with id: %d", id)
}

func duplicateRegistration() error {
	return domain.Errorf(domain.ErrDuplicateRecord, "company with this registration number already exists")
}
