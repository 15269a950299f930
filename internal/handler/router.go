package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"property-service/internal/middleware"
	"property-service/internal/service"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Listings *service.ListingService
	Images   *service.ImageService
	// Ping reports storage health for /healthz.
	Ping   func(ctx context.Context) error
	Logger *slog.Logger
}

var registerTagNames sync.Once

// NewRouter builds the full HTTP handler, CORS included.
func NewRouter(d Deps) http.Handler {
	registerTagNames.Do(useJSONFieldNames)

	r := gin.New()
	r.Use(middleware.RequestLogger(d.Logger), middleware.Recovery(), middleware.ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		if d.Ping != nil {
			if err := d.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	(&ListingHandler{Svc: d.Listings}).RegisterRoutes(api)
	(&ImageHandler{Svc: d.Images}).RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return middleware.CORS(r)
}

// useJSONFieldNames makes validation errors name fields as clients send them.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}
