package domain

import "time"

// Pizza is one orderable entry of the catalog. The same pizza name may appear
// under several variants ("tipo": size or crust), each with its own price.
type Pizza struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Variant     string    `json:"variant"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Favorite marks a pizza a customer wants to find again quickly. It is
// independent of cart membership.
type Favorite struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerId"`
	PizzaID     int64   `json:"pizzaId"`
	DisplayName string  `json:"name"`
	UnitPrice   float64 `json:"price"`
}
