package domain

import "time"

// Address stores the delivery address fields kept on the customer profile.
// Street, district, city and state can be auto-filled from a postal-code
// lookup; number and complement are always typed by the customer.
type Address struct {
	PostalCode string `json:"postalCode,omitempty"`
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}

// Customer represents a registered user of the storefront.
type Customer struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}
