package handler

type driverRequest struct {
	FirstName       string `json:"firstName"       validate:"required,min=2,max=100"`
	LastName        string `json:"lastName"        validate:"required,min=2,max=100"`
	Email           string `json:"email"           validate:"required,email"`
	Mobile          string `json:"mobile"          validate:"omitempty,len=10,numeric"`
	DateOfBirth     string `json:"dateOfBirth"     validate:"omitempty,datetime=2006-01-02"`
	LicenseNumber   string `json:"licenseNumber"   validate:"required"`
	ExperienceYears *int   `json:"experienceYears" validate:"required,min=0,max=50"`
	AddressLine1    string `json:"addressLine1"    validate:"required"`
	AddressLine2    string `json:"addressLine2"`
	City            string `json:"city"            validate:"required"`
	State           string `json:"state"           validate:"required"`
	ZipCode         string `json:"zipCode"         validate:"required"`
}

type driverResponse struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	LicenseNumber   string `json:"licenseNumber"`
	ExperienceYears int    `json:"experienceYears"`
	AddressLine1    string `json:"addressLine1"`
	AddressLine2    string `json:"addressLine2,omitempty"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zipCode"`
}

type driverSearchRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	City          string `json:"city"`
	State         string `json:"state"`
	Page          int    `json:"page" validate:"min=0"`
	Size          int    `json:"size" validate:"omitempty,min=1,max=100"`
}
