package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

type eventPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	CityID      int64   `json:"cityId"`
	ImageURL    *string `json:"imageURL"`
	EventType   string  `json:"eventType"`
	Article     *string `json:"article"`
}

func parseEventDate(raw string) (time.Time, error) {
	t, err := utils.ParseEventDate(raw)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: "date", Msg: "invalid date", Err: err}
	}
	return t, nil
}

// GET /api/events?cityId=1&upcoming=true
func GetEvents(c *gin.Context) {
	f := models.EventFilter{
		CityID:   queryInt64(c, "cityId"),
		Upcoming: c.Query("upcoming") == "true",
		Now:      utils.NowUTC(),
	}
	events, err := repositories.EventRepository{}.List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetEventByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	e, err := repositories.EventRepository{}.GetByID(ctx, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	gallery, err := repositories.GalleryRepository{}.ListByEvent(ctx, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.Gallery = gallery
	c.JSON(http.StatusOK, e)
}

func CreateEvent(c *gin.Context) {
	var p eventPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	e := models.Event{
		Name:        utils.NormalizeSpace(p.Name),
		Description: utils.TrimOrEmpty(p.Description),
		Location:    utils.NormalizeSpace(p.Location),
		CityID:      p.CityID,
		ImageURL:    p.ImageURL,
		EventType:   utils.UpperCode(p.EventType),
		Article:     p.Article,
	}
	if e.Name == "" || e.Description == "" || e.Location == "" || e.CityID <= 0 || strings.TrimSpace(p.Date) == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "Missing required fields"})
		return
	}
	date, err := parseEventDate(p.Date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	e.Date = date

	created, err := repositories.EventRepository{}.Create(c.Request.Context(), e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type eventPatchPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"imageURL"`
	EventType   *string `json:"eventType"`
	Article     *string `json:"article"`
}

// PUT /api/events/:id also carries article edits.
func UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p eventPatchPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	patch := models.EventPatch{
		Name:        normalized(p.Name, utils.NormalizeSpace),
		Description: normalized(p.Description, utils.TrimOrEmpty),
		Location:    normalized(p.Location, utils.NormalizeSpace),
		ImageURL:    p.ImageURL,
		Article:     p.Article,
	}
	if p.Date != nil {
		d, err := parseEventDate(*p.Date)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		patch.Date = &d
	}
	if p.EventType != nil {
		t := utils.UpperCode(*p.EventType)
		if t == "" {
			t = models.DefaultEventType
		}
		patch.EventType = &t
	}
	if patch.Name != nil && *patch.Name == "" {
		RespondDomainError(c, domain.Required("name"))
		return
	}
	if patch.Location != nil && *patch.Location == "" {
		RespondDomainError(c, domain.Required("location"))
		return
	}

	updated, err := repositories.EventRepository{}.Update(c.Request.Context(), id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.EventRepository{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
