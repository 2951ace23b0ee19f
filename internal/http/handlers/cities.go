package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/repositories"
)

// GET /api/cities lists cities with their contact info.
func GetCities(c *gin.Context) {
	cities, err := repositories.CityRepository{}.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func GetShelters(c *gin.Context) {
	shelters, err := repositories.CityRepository{}.ListShelters(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelters)
}
