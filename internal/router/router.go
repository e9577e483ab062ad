package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/poweracademy/academy-server/internal/handler" // the handlers that implement console operations
)

// RegisterRoutes registers routes that do not depend on the console
// state.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterConsole registers every console endpoint under /v1.  The
// provided middleware (rate limiting) is applied to mutating routes
// only; reads come straight off the in-memory collections and are
// cheap enough to leave unthrottled.
func RegisterConsole(e *echo.Echo, h *handler.Console, mutate ...echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	// Dashboard and derived views.  These recompute from the live
	// collections on every request.
	v1.GET("/overview", h.Overview)
	v1.GET("/matches/upcoming", h.ListUpcomingMatches)

	// Coaches.
	v1.GET("/coaches", h.ListCoaches)
	v1.POST("/coaches", h.CreateCoach, mutate...)
	v1.PUT("/coaches/:id", h.UpdateCoach, mutate...)
	v1.DELETE("/coaches/:id", h.DeleteCoach, mutate...)

	// Courses.
	v1.GET("/courses", h.ListCourses)
	v1.POST("/courses", h.CreateCourse, mutate...)
	v1.PUT("/courses/:id", h.UpdateCourse, mutate...)
	v1.DELETE("/courses/:id", h.DeleteCourse, mutate...)

	// Players.  The list endpoint accepts ?q= and ?sport= filters.
	v1.GET("/players", h.ListPlayers)
	v1.POST("/players", h.CreatePlayer, mutate...)
	v1.PUT("/players/:id", h.UpdatePlayer, mutate...)
	v1.DELETE("/players/:id", h.DeletePlayer, mutate...)

	// Matches.
	v1.GET("/matches", h.ListMatches)
	v1.POST("/matches", h.CreateMatch, mutate...)
	v1.PUT("/matches/:id", h.UpdateMatch, mutate...)
	v1.DELETE("/matches/:id", h.DeleteMatch, mutate...)

	// Videos.
	v1.GET("/videos", h.ListVideos)
	v1.POST("/videos", h.CreateVideo, mutate...)
	v1.PUT("/videos/:id", h.UpdateVideo, mutate...)
	v1.DELETE("/videos/:id", h.DeleteVideo, mutate...)

	// Edit sessions.  One transient session per collection; the :kind
	// parameter names the collection (coaches, courses, players,
	// matches, videos).  Saving routes the submitted record through
	// the session's create-or-update intent.
	v1.POST("/:kind/session/create", h.OpenCreateSession)
	v1.POST("/:kind/session/edit/:id", h.OpenEditSession)
	v1.GET("/:kind/session", h.GetSession)
	v1.DELETE("/:kind/session", h.CloseSession)
	v1.POST("/:kind/session/save", h.SaveSession, mutate...)

	// Media uploads are encoded into data URLs that image and video
	// records embed.
	v1.POST("/media/encode", h.EncodeMedia, mutate...)
}
