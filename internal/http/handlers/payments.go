package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/services"
)

// GET /api/payment/config exposes the public checkout key.
func (a *API) PaymentConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keyId": a.RazorpayKeyID, "currency": a.Currency})
}

type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// POST /api/payment/create-order
func (a *API) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	order, err := a.payments(c).CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type verifyPaymentRequest struct {
	OrderID    string  `json:"razorpay_order_id"`
	PaymentID  string  `json:"razorpay_payment_id"`
	Signature  string  `json:"razorpay_signature"`
	Amount     float64 `json:"amount"`
	DonorName  string  `json:"donor_name"`
	DonorEmail string  `json:"donor_email"`
	DonorPhone string  `json:"donor_phone"`
}

// POST /api/payment/verify records the donation once the checkout signature checks out.
// A replayed payment answers with the stored donation.
func (a *API) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.donations(c).Record(c.Request.Context(), services.VerifyPaymentInput{
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Signature:  req.Signature,
		Amount:     req.Amount,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		DonorPhone: req.DonorPhone,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d := res.Donation
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"donation": gin.H{
			"id":        d.ID,
			"amount":    d.Amount,
			"donorName": d.DonorName,
			"paymentId": d.PaymentID,
		},
	})
}
