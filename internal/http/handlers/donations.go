package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/services"
)

// GET /api/donations?page=1&limit=50
func GetDonations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	p := domain.Pagination{Page: page, PageSize: limit}.Normalize(50, 200)

	ctx := c.Request.Context()
	repo := repositories.DonationRepository{}
	rows, p, err := repo.List(ctx, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	summary, err := repo.Summary(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"donations":  rows,
		"pagination": p,
		"summary":    summary,
	})
}

// GET /api/donations/:id/receipt streams the PDF receipt.
func GetDonationReceipt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateReceipt(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
