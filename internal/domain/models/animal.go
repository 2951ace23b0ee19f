package models

import "time"

var AnimalTypes = map[string]bool{
	"DOG":   true,
	"CAT":   true,
	"COW":   true,
	"BIRD":  true,
	"OTHER": true,
}

type Animal struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Age         *int      `json:"age"`
	Story       string    `json:"story"`
	IsAvailable bool      `json:"isAvailable"`
	ImageURL    []string  `json:"imageURL"`
	ShelterID   int64     `json:"shelterId"`
	Shelter     *Shelter  `json:"shelter,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AnimalFilter mirrors the public listing query string.
type AnimalFilter struct {
	CityID      int64
	Type        string
	IsAvailable *bool
}

// AnimalPatch carries the optional fields of an update; nil means unchanged.
type AnimalPatch struct {
	Name        *string   `json:"name"`
	Age         *int      `json:"age"`
	Story       *string   `json:"story"`
	IsAvailable *bool     `json:"isAvailable"`
	ImageURL    *[]string `json:"imageURL"`
}
