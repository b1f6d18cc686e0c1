package ports

import (
	"context"
	"time"

	"github.com/driverportal/portal-api/internal/core/domain"
)

// CompanyInput carries every writable company field.
type CompanyInput struct {
	CompanyName             string
	RegistrationNumber      string
	EstablishedOn           *time.Time
	Website                 string
	AddressLine1            string
	AddressLine2            string
	City                    string
	State                   string
	ZipCode                 string
	PrimaryContactFirstName string
	PrimaryContactLastName  string
	PrimaryContactEmail     string
	PrimaryContactMobile    string
}

// CompanySearch filters are optional, case-insensitive substring matches.
type CompanySearch struct {
	CompanyName         string
	RegistrationNumber  string
	City                string
	State               string
	PrimaryContactEmail string
	PageRequest
}

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	ExistsByRegistrationNumber(ctx context.Context, number string) (bool, error)
	// List returns every company, newest first.
	List(ctx context.Context) ([]*domain.Company, error)
	Search(ctx context.Context, q CompanySearch) ([]*domain.Company, int64, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyService interface {
	CreateCompany(ctx context.Context, in CompanyInput) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id int64, in CompanyInput) (*domain.Company, error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	SearchCompanies(ctx context.Context, q CompanySearch) (*Page[*domain.Company], error)
	DeleteCompany(ctx context.Context, id int64) error
}
