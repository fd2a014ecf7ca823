package routes

import (
	"github.com/ReconfigureIO/linkbudget/handlers/api"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers are the request handlers served by the API.
type Handlers struct {
	Reference api.Reference
	Compute   api.Compute
	Layout    api.Layout
}

// SetupRoutes sets up api routes.
func SetupRoutes(r gin.IRouter, origins []string, h Handlers) {
	r.Use(corsMiddleware(origins))

	r.GET("/presets", h.Reference.Presets)
	r.GET("/modes", h.Reference.Modes)

	r.POST("/timings", h.Compute.Timing)
	r.POST("/bandwidth", h.Compute.Bandwidth)
	r.POST("/links/capacity", h.Compute.Capacity)
	r.POST("/reports", h.Compute.Report)

	layoutRoute := r.Group("/layouts")
	{
		layoutRoute.GET("", h.Layout.List)
		layoutRoute.POST("", h.Layout.Create)
		layoutRoute.GET("/:id", h.Layout.Get)
		layoutRoute.PUT("/:id", h.Layout.Update)
		layoutRoute.DELETE("/:id", h.Layout.Delete)
		layoutRoute.GET("/:id/report", h.Layout.Report)
		layoutRoute.POST("/:id/archive", h.Layout.Archive)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}
