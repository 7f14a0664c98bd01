package models

import "fmt"

// Address is one saved shipping address. At most one record has IsDefault set;
// the repository clears the others whenever a new default is written.
type Address struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// Oneline renders the address the way checkout prefills it.
func (a *Address) Oneline() string {
	return fmt.Sprintf("%s, %s, %s", a.Street, a.City, a.PostalCode)
}
