package entity

import "time"

// Property is a listing. Each property belongs to exactly one company and
// owns zero or more photos; photos never outlive their property.
type Property struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	AddressZipcode      string    `json:"address_zipcode"`
	AddressStreet       string    `json:"address_street"`
	AddressNumber       int       `json:"address_number"`
	AddressComplement   string    `json:"address_complement,omitempty"`
	AddressNeighborhood string    `json:"address_neighborhood"`
	AddressCity         string    `json:"address_city"`
	AddressState        string    `json:"address_state"`
	Price               float64   `json:"price"`
	Description         string    `json:"description"`
	Bedrooms            int       `json:"bedrooms"`
	Bathrooms           int       `json:"bathrooms"`
	CompanyID           int       `json:"company_id"`
	Photos              []Photo   `json:"photos"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Photo is a stored image asset attached to a property.
type Photo struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	FilePath   string `json:"filePath"`
}
