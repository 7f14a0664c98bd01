package models

import "strings"

// ProfileData is the free-form account details blob, overwritten wholesale on
// every save.
type ProfileData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
}

// DisplayName joins first and last name, empty when neither is set.
func (p ProfileData) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
