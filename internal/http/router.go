package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "rescuerehab/internal/config"
	h "rescuerehab/internal/http/handlers"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/utils"
)

// NewRouter wires middleware and the route table. Admin JSON APIs answer 401
// on a missing session; the /admin pages redirect to the login page instead.
func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
	})

	requireAdmin := middleware.RequireAdmin(a.Tokens)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", requireAdmin, h.Routes)
		api.GET("/stats", h.Stats)

		api.GET("/cities", h.GetCities)
		api.GET("/shelters", h.GetShelters)

		animals := api.Group("/animals")
		animals.GET("", h.GetAnimals)
		animals.GET("/:id", h.GetAnimalByID)
		animals.POST("", requireAdmin, h.CreateAnimal)
		animals.PUT("/:id", requireAdmin, h.UpdateAnimal)
		animals.DELETE("/:id", requireAdmin, h.DeleteAnimal)

		events := api.Group("/events")
		events.GET("", h.GetEvents)
		events.GET("/:id", h.GetEventByID)
		events.POST("", requireAdmin, h.CreateEvent)
		events.PUT("/:id", requireAdmin, h.UpdateEvent)
		events.DELETE("/:id", requireAdmin, h.DeleteEvent)
		events.GET("/:id/gallery", h.GetEventGallery)
		events.POST("/:id/gallery", requireAdmin, h.CreateGalleryItem)
		events.PUT("/:id/gallery/:galleryId", requireAdmin, h.UpdateGalleryItem)
		events.DELETE("/:id/gallery/:galleryId", requireAdmin, h.DeleteGalleryItem)

		members := api.Group("/core-members")
		members.GET("", h.GetCoreMembers)
		members.GET("/:id", h.GetCoreMemberByID)
		members.POST("", requireAdmin, h.CreateCoreMember)
		members.PUT("/:id", requireAdmin, h.UpdateCoreMember)
		members.DELETE("/:id", requireAdmin, h.DeleteCoreMember)

		api.POST("/volunteer", a.SubmitVolunteer)
		api.GET("/volunteer", requireAdmin, h.GetVolunteers)
		api.DELETE("/volunteer/:id", requireAdmin, h.DeleteVolunteer)
		api.POST("/contact", a.SubmitContact)
		api.GET("/contact", requireAdmin, h.GetContacts)

		payment := api.Group("/payment")
		payment.GET("/config", a.PaymentConfig)
		payment.POST("/create-order", a.CreateOrder)
		payment.POST("/verify", a.VerifyPayment)

		donations := api.Group("/donations", requireAdmin)
		donations.GET("", h.GetDonations)
		donations.GET("/:id/receipt", h.GetDonationReceipt)

		auth := api.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/logout", a.Logout)
		auth.GET("/verify", a.VerifySession)

		api.POST("/upload", requireAdmin, a.Upload)
		api.POST("/test-email", requireAdmin, a.TestEmail)
	}

	gate := middleware.AdminPageGate(a.Tokens)
	r.GET("/admin", gate, h.AdminPage)
	r.GET("/admin/*page", gate, h.AdminPage)

	if env.StorageDriver == "local" && env.UploadDir != "" {
		r.Static("/images", env.UploadDir)
	}

	h.SetRouter(r)
	return r
}
