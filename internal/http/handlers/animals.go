package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

type animalPayload struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Age         *int     `json:"age"`
	Story       string   `json:"story"`
	IsAvailable *bool    `json:"isAvailable"`
	ImageURL    []string `json:"imageURL"`
	ShelterID   int64    `json:"shelterId"`
}

// GET /api/animals?cityId=1&type=dog&isAvailable=true
func GetAnimals(c *gin.Context) {
	f := models.AnimalFilter{
		CityID:      queryInt64(c, "cityId"),
		Type:        utils.UpperCode(c.Query("type")),
		IsAvailable: queryBool(c, "isAvailable"),
	}
	if f.Type != "" && !models.AnimalTypes[f.Type] {
		RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "unknown animal type"})
		return
	}
	animals, err := repositories.AnimalRepository{}.List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func GetAnimalByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := repositories.AnimalRepository{}.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func CreateAnimal(c *gin.Context) {
	var p animalPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	a := models.Animal{
		Name:        utils.NormalizeSpace(p.Name),
		Type:        utils.UpperCode(p.Type),
		Age:         p.Age,
		Story:       utils.TrimOrEmpty(p.Story),
		IsAvailable: true,
		ImageURL:    p.ImageURL,
		ShelterID:   p.ShelterID,
	}
	if a.Name == "" || a.Type == "" || a.Story == "" || a.ShelterID <= 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "Missing required fields"})
		return
	}
	if !models.AnimalTypes[a.Type] {
		RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "unknown animal type"})
		return
	}
	if a.Age != nil && *a.Age < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "age", Msg: "must not be negative"})
		return
	}
	if p.IsAvailable != nil {
		a.IsAvailable = *p.IsAvailable
	}

	created, err := repositories.AnimalRepository{}.Create(c.Request.Context(), a)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateAnimal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p models.AnimalPatch
	if !BindJSONOrError(c, &p) {
		return
	}
	p.Name = normalized(p.Name, utils.NormalizeSpace)
	p.Story = normalized(p.Story, utils.TrimOrEmpty)
	if p.Name != nil && *p.Name == "" {
		RespondDomainError(c, domain.Required("name"))
		return
	}
	if p.Story != nil && *p.Story == "" {
		RespondDomainError(c, domain.Required("story"))
		return
	}
	updated, err := repositories.AnimalRepository{}.Update(c.Request.Context(), id, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteAnimal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.AnimalRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Animal deleted successfully"})
}
