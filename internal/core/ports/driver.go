package ports

import (
	"context"
	"time"

	"github.com/driverportal/portal-api/internal/core/domain"
)

// DriverInput carries every writable driver field.
type DriverInput struct {
	FirstName       string
	LastName        string
	Email           string
	Mobile          string
	DateOfBirth     *time.Time
	LicenseNumber   string
	ExperienceYears int
	AddressLine1    string
	AddressLine2    string
	City            string
	State           string
	ZipCode         string
}

// DriverSearch filters are optional, case-insensitive substring matches.
type DriverSearch struct {
	FirstName     string
	LastName      string
	Email         string
	LicenseNumber string
	City          string
	State         string
	PageRequest
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	FindByID(ctx context.Context, id int64) (*domain.Driver, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, number string) (bool, error)
	// List returns every driver, newest first.
	List(ctx context.Context) ([]*domain.Driver, error)
	Search(ctx context.Context, q DriverSearch) ([]*domain.Driver, int64, error)
	Delete(ctx context.Context, id int64) error
}

type DriverService interface {
	CreateDriver(ctx context.Context, in DriverInput) (*domain.Driver, error)
	UpdateDriver(ctx context.Context, id int64, in DriverInput) (*domain.Driver, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	SearchDrivers(ctx context.Context, q DriverSearch) (*Page[*domain.Driver], error)
	DeleteDriver(ctx context.Context, id int64) error
}
