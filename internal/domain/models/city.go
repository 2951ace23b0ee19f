package models

type City struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}

type ContactInfo struct {
	ID           int64    `json:"id"`
	CityID       int64    `json:"cityId"`
	PhoneNumbers []string `json:"phoneNumbers"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
}

type Shelter struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	RegistrationNo *string `json:"registrationNo"`
	CityID         int64   `json:"cityId"`
	City           *City   `json:"city,omitempty"`
}

// SiteStats feeds the home page counters.
type SiteStats struct {
	TotalAnimals   int `json:"totalAnimals"`
	TotalCities    int `json:"totalCities"`
	UpcomingEvents int `json:"upcomingEvents"`
}
