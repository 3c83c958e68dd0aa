package v1

import (
	"context"
	"net/http"
	"time"

	"portfolio-site/config"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/delivery/http/web"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const healthTimeout = 2 * time.Second

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	ContentUC      domain.ContentUsecase
	HealthUC       usecase.HealthUsecase
	SecurityLogger *security.SecurityLogger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	// Portfolio page and media
	web.NewPageHandler(r, deps.ContentUC)
	NewDocumentHandler(r, deps.ContentUC)
	if deps.Config.MediaDir != "" {
		r.Static("/images", deps.Config.MediaDir+"/images")
		r.Static("/videos", deps.Config.MediaDir+"/videos")
	}

	// Same handler at the path the page posts to
	NewContactHandler(r, deps.ContactUC, deps.SecurityLogger)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", healthHandler(deps.HealthUC))

	// Public routes
	NewContactHandler(v1, deps.ContactUC, deps.SecurityLogger)
	NewContentHandler(v1, deps.ContentUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// healthHandler godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(uc usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uc == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := uc.Check(ctx)
		if status["status"] != "ok" {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Success:   false,
				Message:   "System degraded",
				Data:      status,
				RequestID: middleware.GetRequestID(c),
			})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
