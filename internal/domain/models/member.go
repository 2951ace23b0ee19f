package models

import "time"

type CoreMember struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	Bio          *string   `json:"bio"`
	ImageURL     *string   `json:"imageURL"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CoreMemberPatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Role         *string `json:"role"`
	Bio          *string `json:"bio"`
	ImageURL     *string `json:"imageURL"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}
