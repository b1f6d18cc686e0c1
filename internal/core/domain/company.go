package domain

import "time"

// CompanyDetails holds the address and primary contact of a company.
type CompanyDetails struct {
	AddressLine1            string    `bson:"address_line1"`
	AddressLine2            string    `bson:"address_line2,omitempty"`
	City                    string    `bson:"city"`
	State                   string    `bson:"state"`
	ZipCode                 string    `bson:"zip_code"`
	PrimaryContactFirstName string    `bson:"primary_contact_first_name"`
	PrimaryContactLastName  string    `bson:"primary_contact_last_name"`
	PrimaryContactEmail     string    `bson:"primary_contact_email"`
	PrimaryContactMobile    string    `bson:"primary_contact_mobile"`
	CreatedAt               time.Time `bson:"created_at"`
}

// Company is a registered transport company. RegistrationNumber is unique.
type Company struct {
	ID                 int64          `bson:"_id"`
	CompanyName        string         `bson:"company_name"`
	RegistrationNumber string         `bson:"registration_number"`
	EstablishedOn      *time.Time     `bson:"established_on,omitempty"`
	Website            string         `bson:"website,omitempty"`
	Details            CompanyDetails `bson:"details"`
	CreatedAt          time.Time      `bson:"created_at"`
	UpdatedAt          time.Time      `bson:"updated_at"`
}
