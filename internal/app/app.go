package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	intconfig "rescuerehab/internal/config"
	router "rescuerehab/internal/http"
	"rescuerehab/internal/http/handlers"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/notifier"
	"rescuerehab/internal/services"
	"rescuerehab/internal/storage"
	"rescuerehab/internal/utils"
)

// App is the assembled HTTP application shared by the server and Lambda entry points.
type App struct {
	Env      intconfig.Env
	Engine   *gin.Engine
	Notifier notifier.Notifier
}

// New connects the database and builds every collaborator named by env.
func New(ctx context.Context, env intconfig.Env) (*App, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if _, err := intconfig.ConnectDB(env); err != nil {
		return nil, err
	}

	m, err := mailer.New(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	n, err := notifier.New(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("notifier: %w", err)
	}
	store, err := storage.New(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	var orders services.OrderCreator
	if env.RazorpayKeyID != "" && env.RazorpayKeySecret != "" {
		orders = services.NewRazorpayOrders(env.RazorpayKeyID, env.RazorpayKeySecret)
	} else {
		utils.Log.Warn().Msg("razorpay keys not set, order creation disabled")
	}

	api := &handlers.API{
		Orders:   orders,
		Verifier: services.PaymentVerifier{Secret: env.RazorpayKeySecret},
		Hooks:    services.DefaultDonationHooks(m, env.OperatorEmail, n),
		Credentials: services.StaticCredentials{
			Identity:     adminIdentity(env),
			Password:     env.AdminPassword,
			PasswordHash: env.AdminPasswordHash,
		},
		Tokens:        services.TokenIssuer{Secret: []byte(env.JWTSecret)},
		Mailer:        m,
		Store:         store,
		RazorpayKeyID: env.RazorpayKeyID,
		Currency:      env.Currency,
		OperatorEmail: env.OperatorEmail,
		MailTransport: env.EmailProvider,
		SecureCookies: env.IsProduction(),
	}

	return &App{
		Env:      env,
		Engine:   router.NewRouter(env, api),
		Notifier: n,
	}, nil
}

// Close releases the event sink and the DB pool.
func (a *App) Close() {
	if a.Notifier != nil {
		if err := a.Notifier.Close(); err != nil {
			utils.Log.Warn().Err(err).Msg("close notifier")
		}
	}
	intconfig.CloseDB()
}
