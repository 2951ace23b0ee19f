package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

// GET /api/core-members returns active members in display order.
func GetCoreMembers(c *gin.Context) {
	members, err := repositories.CoreMemberRepository{}.ListActive(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func GetCoreMemberByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := repositories.CoreMemberRepository{}.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type coreMemberPayload struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Role         string  `json:"role"`
	Bio          *string `json:"bio"`
	ImageURL     *string `json:"imageURL"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder int     `json:"displayOrder"`
}

func CreateCoreMember(c *gin.Context) {
	var p coreMemberPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	m := models.CoreMember{
		FirstName:    utils.NormalizeSpace(p.FirstName),
		LastName:     utils.NormalizeSpace(p.LastName),
		Role:         utils.NormalizeSpace(p.Role),
		Bio:          p.Bio,
		ImageURL:     p.ImageURL,
		Email:        p.Email,
		Phone:        p.Phone,
		IsActive:     true,
		DisplayOrder: p.DisplayOrder,
	}
	if m.FirstName == "" || m.LastName == "" || m.Role == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "First name, last name and role are required"})
		return
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	created, err := repositories.CoreMemberRepository{}.Create(c.Request.Context(), m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateCoreMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p models.CoreMemberPatch
	if !BindJSONOrError(c, &p) {
		return
	}
	p.FirstName = normalized(p.FirstName, utils.NormalizeSpace)
	p.LastName = normalized(p.LastName, utils.NormalizeSpace)
	p.Role = normalized(p.Role, utils.NormalizeSpace)
	required := []struct {
		field string
		value *string
	}{{"firstName", p.FirstName}, {"lastName", p.LastName}, {"role", p.Role}}
	for _, r := range required {
		if r.value != nil && *r.value == "" {
			RespondDomainError(c, domain.Required(r.field))
			return
		}
	}
	updated, err := repositories.CoreMemberRepository{}.Update(c.Request.Context(), id, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteCoreMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.CoreMemberRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Core member deleted successfully"})
}
