package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
)

type volunteerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	City      string  `json:"city"`
	Message   *string `json:"message"`
}

// POST /api/volunteer
func (a *API) SubmitVolunteer(c *gin.Context) {
	var req volunteerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := a.intake(c).SubmitVolunteer(c.Request.Context(), models.VolunteerApplication{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		Message:   req.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "id": id})
}

func GetVolunteers(c *gin.Context) {
	rows, err := repositories.IntakeRepository{}.ListVolunteers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func DeleteVolunteer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.IntakeRepository{}).DeleteVolunteer(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// POST /api/contact
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := a.intake(c).SubmitContact(c.Request.Context(), models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": id})
}

func GetContacts(c *gin.Context) {
	rows, err := repositories.IntakeRepository{}.ListContacts(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
