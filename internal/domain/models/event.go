package models

import "time"

const DefaultEventType = "GENERAL"

var MediaTypes = map[string]bool{
	"IMAGE": true,
	"VIDEO": true,
}

type Event struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Location    string         `json:"location"`
	CityID      int64          `json:"cityId"`
	ImageURL    *string        `json:"imageURL"`
	EventType   string         `json:"eventType"`
	Article     *string        `json:"article"`
	City        *City          `json:"city,omitempty"`
	Gallery     []EventGallery `json:"gallery,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type EventFilter struct {
	CityID   int64
	Upcoming bool
	Now      time.Time
}

type EventPatch struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"imageURL"`
	EventType   *string    `json:"eventType"`
	Article     *string    `json:"article"`
}

type EventGallery struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"eventId"`
	MediaType  string    `json:"mediaType"`
	URL        string    `json:"url"`
	Caption    *string   `json:"caption"`
	AltText    *string   `json:"altText"`
	IsFeatured bool      `json:"isFeatured"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}
