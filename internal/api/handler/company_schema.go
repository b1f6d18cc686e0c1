package handler

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

type companyRequest struct {
	CompanyName             string `json:"companyName"             validate:"required,min=2,max=50"`
	RegistrationNumber      string `json:"registrationNumber"      validate:"required,min=2,max=50"`
	EstablishedOn           string `json:"establishedOn"           validate:"omitempty,datetime=2006-01-02"`
	Website                 string `json:"website"                 validate:"omitempty,max=150,url"`
	AddressLine1            string `json:"addressLine1"            validate:"required,min=5,max=200"`
	AddressLine2            string `json:"addressLine2"            validate:"omitempty,max=200"`
	City                    string `json:"city"                    validate:"required"`
	State                   string `json:"state"                   validate:"required"`
	ZipCode                 string `json:"zipCode"                 validate:"required,min=2,max=20"`
	PrimaryContactFirstName string `json:"primaryContactFirstName" validate:"required"`
	PrimaryContactLastName  string `json:"primaryContactLastName"  validate:"required"`
	PrimaryContactEmail     string `json:"primaryContactEmail"     validate:"required,email"`
	PrimaryContactMobile    string `json:"primaryContactMobile"    validate:"required,len=10,numeric"`
}

type companyResponse struct {
	ID                      int64  `json:"id"`
	CompanyName             string `json:"companyName"`
	RegistrationNumber      string `json:"registrationNumber"`
	EstablishedOn           string `json:"establishedOn,omitempty"`
	Website                 string `json:"website,omitempty"`
	AddressLine1            string `json:"addressLine1"`
	AddressLine2            string `json:"addressLine2,omitempty"`
	City                    string `json:"city"`
	State                   string `json:"state"`
	ZipCode                 string `json:"zipCode"`
	PrimaryContactFirstName string `json:"primaryContactFirstName"`
	PrimaryContactLastName  string `json:"primaryContactLastName"`
	PrimaryContactEmail     string `json:"primaryContactEmail"`
	PrimaryContactMobile    string `json:"primaryContactMobile"`
}

type companySearchRequest struct {
	CompanyName         string `json:"companyName"`
	RegistrationNumber  string `json:"registrationNumber"`
	City                string `json:"city"`
	State               string `json:"state"`
	PrimaryContactEmail string `json:"primaryContactEmail"`
	Page                int    `json:"page" validate:"min=0"`
	Size                int    `json:"size" validate:"omitempty,min=1,max=100"`
}

// pageResponse is one page of a search result.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
