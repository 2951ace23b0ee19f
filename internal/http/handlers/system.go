package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

func DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := intconfig.PingDB(ctx); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "database unavailable", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "database connection OK",
		"migrated": intdb.HasTable(ctx, intconfig.DB, "donations"),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "router not ready")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// GET /api/stats
func Stats(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		stats models.SiteStats
		err   error
	)
	stats.TotalAnimals, err = repositories.AnimalRepository{}.CountAvailable(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	stats.TotalCities, err = repositories.CityRepository{}.Count(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	stats.UpcomingEvents, err = repositories.EventRepository{}.CountUpcoming(ctx, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
