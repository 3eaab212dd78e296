package models

// Practice is the business entity an account operates under. Individual
// practitioners get a one-to-one practice; company practices can be shared
// by several accounts.
type Practice struct {
	BaseModel
	BusinessName string
	IsCompany    bool `gorm:"default:false"`
	Website      string

	Addresses []Address `gorm:"foreignKey:PracticeID"`
}

// Address is a practice location. Latitude/longitude and Verified are
// filled in by the geocoder during onboarding or practice updates.
type Address struct {
	BaseModel
	PracticeID string `gorm:"type:uuid;index;not null"`
	Line1      string `gorm:"not null"`
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Latitude   float64
	Longitude  float64
	Verified   bool `gorm:"default:false"`
}
