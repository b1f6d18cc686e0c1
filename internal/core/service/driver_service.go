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

const maxExperienceYears = 50

type DriverService struct {
	repo ports.DriverRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewDriverService(repo ports.DriverRepository, log zerolog.Logger) *DriverService {
	return &DriverService{repo: repo, log: log, now: time.Now}
}

// CreateDriver checks email, then license number, for uniqueness.
func (s *DriverService) CreateDriver(ctx context.Context, in ports.DriverInput) (*domain.Driver, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, in.Email); err != nil {
		return nil, err
	}
	if err := s.checkLicense(ctx, in.LicenseNumber); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	d := &domain.Driver{CreatedAt: now, UpdatedAt: now}
	applyDriverInput(d, in)
	d.Details.CreatedAt = now

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("driver_id", created.ID).Msg("driver created")
	return created, nil
}

func (s *DriverService) UpdateDriver(ctx context.Context, id int64, in ports.DriverInput) (*domain.Driver, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	d, err := s.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != d.Email {
		if err := s.checkEmail(ctx, in.Email); err != nil {
			return nil, err
		}
	}
	if in.LicenseNumber != d.LicenseNumber {
		if err := s.checkLicense(ctx, in.LicenseNumber); err != nil {
			return nil, err
		}
	}

	applyDriverInput(d, in)
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, driverNotFound(id)
		}
		return nil, err
	}
	return d, nil
}

func (s *DriverService) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, driverNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return d, nil
}

func (s *DriverService) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return ds, nil
}

func (s *DriverService) SearchDrivers(ctx context.Context, q ports.DriverSearch) (*ports.Page[*domain.Driver], error) {
	q.PageRequest = q.PageRequest.Normalize()
	items, total, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search drivers: %w", err)
	}
	return ports.NewPage(items, total, q.PageRequest), nil
}

func (s *DriverService) DeleteDriver(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return driverNotFound(id)
		}
		return fmt.Errorf("delete driver: %w", err)
	}
	s.log.Info().Int64("driver_id", id).Msg("driver deleted")
	return nil
}

func (s *DriverService) validate(in ports.DriverInput) error {
	if in.Email == "" || in.LicenseNumber == "" {
		return domain.Errorf(domain.ErrInvalidInput, "email and license number are required")
	}
	if in.ExperienceYears < 0 || in.ExperienceYears > maxExperienceYears {
		return domain.Errorf(domain.ErrInvalidInput, "experience years must be between 0 and %d", maxExperienceYears)
	}
	if in.DateOfBirth != nil && !in.DateOfBirth.Before(s.now()) {
		return domain.Errorf(domain.ErrInvalidInput, "date of birth must be in the past")
	}
	return nil
}

func (s *DriverService) checkEmail(ctx context.Context, email string) error {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check driver email: %w", err)
	}
	if exists {
		return domain.Errorf(domain.ErrDuplicateRecord, "driver with this email already exists")
	}
	return nil
}

func (s *DriverService) checkLicense(ctx context.Context, number string) error {
	exists, err := s.repo.ExistsByLicenseNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("check driver license: %w", err)
	}
	if exists {
		return domain.Errorf(domain.ErrDuplicateRecord, "driver with this license number already exists")
	}
	return nil
}

func applyDriverInput(d *domain.Driver, in ports.DriverInput) {
	d.FirstName = in.FirstName
	d.LastName = in.LastName
	d.Email = in.Email
	d.Mobile = in.Mobile
	d.DateOfBirth = in.DateOfBirth
	d.LicenseNumber = in.LicenseNumber
	d.ExperienceYears = in.ExperienceYears
	d.Details.AddressLine1 = in.AddressLine1
	d.Details.AddressLine2 = in.AddressLine2
	d.Details.City = in.City
	d.Details.State = in.State
	d.Details.ZipCode = in.ZipCode
}

func driverNotFound(id int64) error {
	return domain.Errorf(domain.ErrNotFound, "driver not found with id: %d", id)
}
