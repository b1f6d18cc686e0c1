package handler

import (
	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

func (r driverRequest) toInput() (ports.DriverInput, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return ports.DriverInput{}, err
	}
	in := ports.DriverInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Mobile:        r.Mobile,
		DateOfBirth:   dob,
		LicenseNumber: r.LicenseNumber,
		AddressLine1:  r.AddressLine1,
		AddressLine2:  r.AddressLine2,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
	}
	if r.ExperienceYears != nil {
		in.ExperienceYears = *r.ExperienceYears
	}
	return in, nil
}

func (r driverSearchRequest) toSearch() ports.DriverSearch {
	return ports.DriverSearch{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		LicenseNumber: r.LicenseNumber,
		City:          r.City,
		State:         r.State,
		PageRequest:   ports.PageRequest{Page: r.Page, Size: r.Size},
	}
}

func toDriverResponse(d *domain.Driver) driverResponse {
	return driverResponse{
		ID:              d.ID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Mobile:          d.Mobile,
		DateOfBirth:     formatDate(d.DateOfBirth),
		LicenseNumber:   d.LicenseNumber,
		ExperienceYears: d.ExperienceYears,
		AddressLine1:    d.Details.AddressLine1,
		AddressLine2:    d.Details.AddressLine2,
		City:            d.Details.City,
		State:           d.Details.State,
		ZipCode:         d.Details.ZipCode,
	}
}
