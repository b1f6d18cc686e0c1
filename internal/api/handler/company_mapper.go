package handler

import (
	"time"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

// parseDate converts an optional YYYY-MM-DD string. The validator has
// already checked the layout.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "invalid date %q", s)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func (r companyRequest) toInput() (ports.CompanyInput, error) {
	established, err := parseDate(r.EstablishedOn)
	if err != nil {
		return ports.CompanyInput{}, err
	}
	return ports.CompanyInput{
		CompanyName:             r.CompanyName,
		RegistrationNumber:      r.RegistrationNumber,
		EstablishedOn:           established,
		Website:                 r.Website,
		AddressLine1:            r.AddressLine1,
		AddressLine2:            r.AddressLine2,
		City:                    r.City,
		State:                   r.State,
		ZipCode:                 r.ZipCode,
		PrimaryContactFirstName: r.PrimaryContactFirstName,
		PrimaryContactLastName:  r.PrimaryContactLastName,
		PrimaryContactEmail:     r.PrimaryContactEmail,
		PrimaryContactMobile:    r.PrimaryContactMobile,
	}, nil
}

func (r companySearchRequest) toSearch() ports.CompanySearch {
	return ports.CompanySearch{
		CompanyName:         r.CompanyName,
		RegistrationNumber:  r.RegistrationNumber,
		City:                r.City,
		State:               r.State,
		PrimaryContactEmail: r.PrimaryContactEmail,
		PageRequest:         ports.PageRequest{Page: r.Page, Size: r.Size},
	}
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:                      c.ID,
		CompanyName:             c.CompanyName,
		RegistrationNumber:      c.RegistrationNumber,
		EstablishedOn:           formatDate(c.EstablishedOn),
		Website:                 c.Website,
		AddressLine1:            c.Details.AddressLine1,
		AddressLine2:            c.Details.AddressLine2,
		City:                    c.Details.City,
		State:                   c.Details.State,
		ZipCode:                 c.Details.ZipCode,
		PrimaryContactFirstName: c.Details.PrimaryContactFirstName,
		PrimaryContactLastName:  c.Details.PrimaryContactLastName,
		PrimaryContactEmail:     c.Details.PrimaryContactEmail,
		PrimaryContactMobile:    c.Details.PrimaryContactMobile,
	}
}

func toCompanyResponses(cs []*domain.Company) []companyResponse {
	out := make([]companyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCompanyResponse(c))
	}
	return out
}

// toPageResponse maps a service page through conv.
func toPageResponse[S, T any](p *ports.Page[S], conv func(S) T) pageResponse[T] {
	content := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		content = append(content, conv(item))
	}
	return pageResponse[T]{
		Content:       content,
		TotalElements: p.Total,
		TotalPages:    p.TotalPages,
		Number:        p.Page,
		Size:          p.Size,
	}
}
