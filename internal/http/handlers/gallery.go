package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

type galleryPayload struct {
	MediaType  string  `json:"mediaType"`
	URL        string  `json:"url"`
	Caption    *string `json:"caption"`
	AltText    *string `json:"altText"`
	IsFeatured bool    `json:"isFeatured"`
	Order      int     `json:"order"`
}

// GET /api/events/:id/gallery
func GetEventGallery(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := repositories.GalleryRepository{}.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateGalleryItem(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p galleryPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	g := models.EventGallery{
		EventID:    eventID,
		MediaType:  utils.UpperCode(p.MediaType),
		URL:        utils.TrimOrEmpty(p.URL),
		Caption:    p.Caption,
		AltText:    p.AltText,
		IsFeatured: p.IsFeatured,
		Order:      p.Order,
	}
	if g.MediaType == "" || g.URL == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "Media type and URL are required"})
		return
	}
	if !models.MediaTypes[g.MediaType] {
		RespondDomainError(c, domain.ValidationError{Field: "mediaType", Msg: "must be IMAGE or VIDEO"})
		return
	}

	ctx := c.Request.Context()
	exists, err := repositories.EventRepository{}.Exists(ctx, eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !exists {
		RespondDomainError(c, domain.NotFoundError{Resource: "event"})
		return
	}

	created, err := repositories.GalleryRepository{}.Create(ctx, g)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateGalleryItem(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "galleryId")
	if !ok {
		return
	}
	var p repositories.GalleryPatch
	if !BindJSONOrError(c, &p) {
		return
	}
	if p.MediaType != nil {
		mt := utils.UpperCode(*p.MediaType)
		if !models.MediaTypes[mt] {
			RespondDomainError(c, domain.ValidationError{Field: "mediaType", Msg: "must be IMAGE or VIDEO"})
			return
		}
		p.MediaType = &mt
	}
	p.URL = normalized(p.URL, utils.TrimOrEmpty)
	if p.URL != nil && *p.URL == "" {
		RespondDomainError(c, domain.Required("url"))
		return
	}
	updated, err := repositories.GalleryRepository{}.Update(c.Request.Context(), eventID, itemID, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteGalleryItem(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "galleryId")
	if !ok {
		return
	}
	if err := (repositories.GalleryRepository{}).Delete(c.Request.Context(), eventID, itemID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}
