package routes

import (
	"net/http"

	"pondilore/assistant"
	"pondilore/auth"
	"pondilore/catalog"
	"pondilore/emergency"
	"pondilore/export"
	"pondilore/middleware"
	"pondilore/profile"
	"pondilore/ratelim"
	"pondilore/settings"
	"pondilore/transit"
	"pondilore/trips"
	"pondilore/wizard"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
	router.ServeFiles("/static/placepic/*filepath", http.Dir("static/placepic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/places", rl.Limit(catalog.GetPlaces))
	router.GET("/api/places/categories", rl.Limit(catalog.GetCategories))
	router.GET("/api/places/category/:category", rl.Limit(catalog.GetPlacesByCategory))
	router.GET("/api/places/place/:id", rl.Limit(catalog.GetPlaceByID))
}

func AddTransitRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/transit", rl.Limit(transit.GetTransit))
	router.GET("/api/transit/item/:id", rl.Limit(transit.GetTransitByID))
	router.POST("/api/transit/seed", middleware.Authenticate(transit.SeedTransit))
}

func AddEmergencyRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/emergency", rl.Limit(emergency.GetEmergencyDirectory))
	router.GET("/api/emergency/helplines", rl.Limit(emergency.GetHelplines))
}

func AddWizardRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *wizard.Handler) {
	router.POST("/api/wizard/open", middleware.Authenticate(h.Open))
	router.PATCH("/api/wizard/draft", middleware.Authenticate(h.Update))
	router.POST("/api/wizard/next", middleware.Authenticate(h.Next))
	router.POST("/api/wizard/back", middleware.Authenticate(h.Back))
	router.POST("/api/wizard/jump", middleware.Authenticate(h.Jump))
	router.GET("/api/wizard/review", middleware.Authenticate(h.Review))
	router.POST("/api/wizard/generate", rl.Limit(middleware.Authenticate(h.Generate)))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *trips.Handler, exp *export.Handler) {
	router.GET("/api/trips", middleware.Authenticate(h.List))
	router.GET("/api/trips/live", middleware.Authenticate(h.Live))
	router.GET("/api/trips/trip/:id", middleware.Authenticate(h.Get))
	router.DELETE("/api/trips/trip/:id", middleware.Authenticate(h.Delete))
	router.GET("/api/trips/trip/:id/pdf", rl.Limit(middleware.Authenticate(exp.PDF)))
	router.GET("/api/trips/trip/:id/ics", rl.Limit(middleware.Authenticate(exp.ICS)))
}

func AddAssistantRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *assistant.Handler) {
	router.POST("/api/assistant/ask", rl.Limit(middleware.OptionalAuth(h.Ask)))
	router.GET("/api/assistant/stream", middleware.OptionalAuth(h.Stream))
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PATCH("/api/profile", middleware.Authenticate(profile.UpdateProfile))
	router.PUT("/api/profile/avatar", rl.Limit(middleware.Authenticate(profile.EditProfilePic)))
}

func AddSettingsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/settings", middleware.Authenticate(settings.GetUserSettings))
	router.PUT("/api/settings/:type", rl.Limit(middleware.Authenticate(settings.UpdateUserSetting)))
}
