// Package dto provides data transfer objects shared across use cases.
package dto

// CommuneRefDTO is the commune projection attached to listed rows.
type CommuneRefDTO struct {
	ID  uint   `json:"id"`
	Nom string `json:"nom"`
}

// ThemeRefDTO is the theme projection attached to listed rows.
type ThemeRefDTO struct {
	ID          uint   `json:"id"`
	Designation string `json:"designation"`
}

// PersonRefDTO is the requester or jurist projection attached to listed rows.
type PersonRefDTO struct {
	ID     uint   `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Actif  bool   `json:"actif"`
}
