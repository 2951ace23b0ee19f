package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/services"
)

// POST /api/upload (multipart: file, type, category)
func (a *API) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "No file uploaded"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "Failed to upload file", Err: err})
		return
	}
	defer f.Close()

	svc := services.UploadService{Store: a.Store, RequestID: middleware.GetRequestID(c), Now: a.Now}
	res, err := svc.Upload(c.Request.Context(), services.UploadInput{
		Kind:        c.PostForm("type"),
		Category:    c.PostForm("category"),
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": res.URL, "fileName": res.FileName})
}
