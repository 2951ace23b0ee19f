package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/services"
	"rescuerehab/internal/storage"
)

// API holds the handlers that need injected collaborators (payment provider,
// mail transport, object storage, session tokens). Plain CRUD handlers are
// package-level functions over the shared DB pool.
type API struct {
	Orders        services.OrderCreator
	Verifier      services.PaymentVerifier
	Hooks         []services.DonationHook
	Credentials   services.CredentialVerifier
	Tokens        services.TokenIssuer
	Mailer        mailer.Mailer
	Store         storage.Store
	RazorpayKeyID string
	Currency      string
	OperatorEmail string
	MailTransport string
	SecureCookies bool
	Now           func() time.Time
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *API) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Orders:          a.Orders,
		DefaultCurrency: a.Currency,
		RequestID:       middleware.GetRequestID(c),
		Now:             a.Now,
	}
}

func (a *API) donations(c *gin.Context) services.DonationService {
	return services.DonationService{
		Verifier:  a.Verifier,
		Store:     repositories.DonationRepository{},
		Hooks:     a.Hooks,
		Currency:  a.Currency,
		RequestID: middleware.GetRequestID(c),
		Now:       a.Now,
	}
}

func (a *API) auth(c *gin.Context) services.AuthService {
	return services.AuthService{
		Credentials: a.Credentials,
		Tokens:      a.Tokens,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a *API) intake(c *gin.Context) services.IntakeService {
	return services.IntakeService{
		Store:         repositories.IntakeRepository{},
		Mailer:        a.Mailer,
		OperatorEmail: a.OperatorEmail,
		RequestID:     middleware.GetRequestID(c),
		Now:           a.Now,
	}
}
