package domain

import "time"

// DriverDetails holds a driver's postal address.
type DriverDetails struct {
	AddressLine1 string    `bson:"address_line1"`
	AddressLine2 string    `bson:"address_line2,omitempty"`
	City         string    `bson:"city"`
	State        string    `bson:"state"`
	ZipCode      string    `bson:"zip_code"`
	CreatedAt    time.Time `bson:"created_at"`
}

// Driver is a licensed driver. Email and LicenseNumber are each unique.
type Driver struct {
	ID              int64         `bson:"_id"`
	FirstName       string        `bson:"first_name"`
	LastName        string        `bson:"last_name"`
	Email           string        `bson:"email"`
	Mobile          string        `bson:"mobile"`
	DateOfBirth     *time.Time    `bson:"date_of_birth,omitempty"`
	LicenseNumber   string        `bson:"license_number"`
	ExperienceYears int           `bson:"experience_years"`
	Details         DriverDetails `bson:"details"`
	CreatedAt       time.Time     `bson:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at"`
}
