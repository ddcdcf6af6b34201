package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"argus-backend/config"
	"argus-backend/internal/booking"
	"argus-backend/internal/mw"
	"argus-backend/internal/store"
	"argus-backend/internal/voting"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, reservations *booking.Guard, votes *voting.Guard, sessions *voting.SessionService) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, reservations, votes, sessions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/reservations", handler.PostReservation)
		api.GET("/reservations", handler.GetReservations)
		api.DELETE("/reservations/:id", handler.DeleteReservation)

		api.POST("/votes", handler.PostVote)
		api.GET("/votes/:id", handler.GetVote)
		api.DELETE("/votes/:id", handler.DeleteVote)

		api.POST("/sessions", handler.PostSession)
		api.GET("/sessions", handler.GetSessions)
		api.GET("/sessions/:id", handler.GetSession)
		api.GET("/sessions/:id/votes", handler.GetSessionVotes)
		api.DELETE("/sessions/:id", handler.DeleteSession)

		api.POST("/users", handler.PostUser)
		api.GET("/users", handler.GetUsers)
		api.GET("/users/:id", handler.GetUser)
		api.PUT("/users/:id", handler.PutUser)
		api.DELETE("/users/:id", handler.DeleteUser)

		// Writes run through the caching middleware too: a successful
		// mutation flushes the cached listings.
		api.POST("/condominiums", caching, handler.PostCondominium)
		api.GET("/condominiums", caching, handler.GetCondominiums)
		api.GET("/condominiums/:id", handler.GetCondominium)
		api.PUT("/condominiums/:id", caching, handler.PutCondominium)
		api.DELETE("/condominiums/:id", caching, handler.DeleteCondominium)

		api.POST("/areas", caching, handler.PostArea)
		api.GET("/areas", caching, handler.GetAreas)
		api.GET("/areas/:id", handler.GetArea)
		api.PUT("/areas/:id", caching, handler.PutArea)
		api.DELETE("/areas/:id", caching, handler.DeleteArea)

		api.POST("/occurrences", handler.PostOccurrence)
		api.GET("/occurrences", handler.GetOccurrences)
		api.GET("/occurrences/:id", handler.GetOccurrence)
		api.PUT("/occurrences/:id", handler.PutOccurrence)
		api.DELETE("/occurrences/:id", handler.DeleteOccurrence)

		api.POST("/announcements", caching, handler.PostAnnouncement)
		api.GET("/announcements", caching, handler.GetAnnouncements)
		api.GET("/announcements/:id", handler.GetAnnouncement)
		api.PUT("/announcements/:id", caching, handler.PutAnnouncement)
		api.DELETE("/announcements/:id", caching, handler.DeleteAnnouncement)
	}

	return r
}
